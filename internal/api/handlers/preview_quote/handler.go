package preview_quote

import (
	"net/http"

	"github.com/resortdesk/quote-service/internal/api/handlers"
	generateQuoteHandler "github.com/resortdesk/quote-service/internal/api/handlers/generate_quote"
	"github.com/resortdesk/quote-service/internal/domain"
	generateQuote "github.com/resortdesk/quote-service/internal/usecase/generate_quote"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase PreviewQuoteUseCase
	logger  Logger
}

func NewHandler(useCase PreviewQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes/preview
// Живой расчет цены: неполные или непригодные для бронирования данные не отклоняются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req generateQuoteHandler.QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		// Нераспознанная дата равносильна неуказанной
		useCaseReq = previewRequest(&req)
	}

	result := h.useCase.Preview(r.Context(), useCaseReq)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// previewRequest собирает запрос без дат
func previewRequest(req *generateQuoteHandler.QuoteRequest) *generateQuote.Request {
	return &generateQuote.Request{
		CustomerName:    req.CustomerName,
		Rooms:           req.Rooms,
		Dates:           domain.DateRange{},
		MealPlans:       req.MealPlans,
		ClientType:      domain.ClientType(req.ClientType),
		OverallDiscount: req.OverallDiscount,
	}
}
