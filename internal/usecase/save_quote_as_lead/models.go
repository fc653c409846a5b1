package save_quote_as_lead

import (
	"github.com/resortdesk/quote-service/internal/domain"
	"github.com/resortdesk/quote-service/internal/service/leads/models"
)

// Request модель запроса на сохранение предложения как лида
type Request struct {
	CustomerName string       // Имя гостя, обязательно
	Mobile       string       // Мобильный; пусто - номер по умолчанию из конфигурации
	Preferences  []string     // Пожелания из разобранного запроса, попадают в заметки нового лида
	Quote        domain.Quote // Сгенерированное предложение
}

// Response модель ответа
type Response struct {
	Created bool                 // true - создан новый лид, false - предложение добавлено к существующему
	Lead    *models.LeadResponse // Лид после сохранения
}
