package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс логирования для клиента
type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Client клиент для работы с DirectoryService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента DirectoryService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBusiness получает бизнес по идентификатору
func (c *Client) GetBusiness(ctx context.Context, businessID uuid.UUID) (*Business, error) {
	url := fmt.Sprintf("%s/internal/businesses/%s", c.baseURL, businessID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid business ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrBusinessNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var business Business
	if err := json.NewDecoder(resp.Body).Decode(&business); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &business, nil
}

// GetSpecialist получает специалиста бизнеса по идентификатору
func (c *Client) GetSpecialist(ctx context.Context, businessID, specialistID uuid.UUID) (*Specialist, error) {
	url := fmt.Sprintf("%s/internal/businesses/%s/specialists/%s", c.baseURL, businessID, specialistID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid specialist ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrSpecialistNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var specialist Specialist
	if err := json.NewDecoder(resp.Body).Decode(&specialist); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &specialist, nil
}

// GetBusinessWithGracefulDegradation получает бизнес с graceful degradation
// При недоступности DirectoryService возвращает ErrServiceDegraded,
// что позволяет вызывающему коду пропустить проверку прав доступа
func (c *Client) GetBusinessWithGracefulDegradation(ctx context.Context, businessID uuid.UUID) (*Business, error) {
	c.log.Info("Fetching business business_id=%s", businessID)

	business, err := c.GetBusiness(ctx, businessID)
	if err != nil {
		// Если это критичная бизнес-ошибка (бизнес не найден),
		// пробрасываем её дальше
		if err == ErrBusinessNotFound {
			c.log.Info("Business not found business_id=%s", businessID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("DirectoryService unavailable, applying graceful degradation for business_id=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: business_id=%s, error=%v", ErrServiceDegraded, businessID, err)
	}

	c.log.Info("Successfully fetched business business_id=%s, name=%s", businessID, business.Name)
	return business, nil
}
