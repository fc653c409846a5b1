package parse_inquiry

import "github.com/resortdesk/quote-service/internal/inquiry"

type InquiryParser interface {
	ParseInquiry(text string) inquiry.ParsedInquiry
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
