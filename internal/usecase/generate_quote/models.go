package generate_quote

import "github.com/resortdesk/quote-service/internal/domain"

// Request модель запроса на генерацию предложения
type Request struct {
	CustomerName    string                     // Имя гостя; пусто - "Valued Guest"
	Rooms           []domain.RoomConfiguration // Номера в порядке отображения
	Dates           domain.DateRange           // Даты заезда и выезда
	MealPlans       []domain.MealPlanCode      // Выбранные планы питания
	ClientType      domain.ClientType          // Тип клиента; пусто - individual
	OverallDiscount float64                    // Общая скидка в процентах; отрицательная - наценка
}

// Response модель ответа со сгенерированным предложением
type Response struct {
	CustomerName string
	Quote        domain.Quote
}

// PreviewResponse расчет без валидации и без текста (живая сводка цены)
type PreviewResponse struct {
	Nights    int
	Complete  bool // все тарифы найдены в таблице
	Breakdown domain.QuoteBreakdown
}
