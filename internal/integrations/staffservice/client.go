package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы со StaffService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetEmployeesByLocation получает список сотрудников, закреплённых за локацией
// Порядок сотрудников в ответе сервиса сохраняется
func (c *Client) GetEmployeesByLocation(ctx context.Context, locationID int64) ([]Employee, error) {
	url := fmt.Sprintf("%s/internal/locations/%d/employees", c.baseURL, locationID)

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
	case http.StatusNotFound:
		return nil, ErrLocationNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var employees []Employee
	if err := json.NewDecoder(resp.Body).Decode(&employees); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return employees, nil
}

// GetHourlyRate получает персональную часовую ставку сотрудника на локации
// Возвращает nil rate, если персональная ставка не задана
func (c *Client) GetHourlyRate(ctx context.Context, employeeID, locationID int64) (*float64, error) {
	url := fmt.Sprintf("%s/internal/employees/%d/locations/%d/hourly-rate", c.baseURL, employeeID, locationID)

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
	case http.StatusNotFound:
		return nil, ErrEmployeeNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var rate HourlyRate
	if err := json.NewDecoder(resp.Body).Decode(&rate); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return rate.Rate, nil
}

// GetHourlyRateWithGracefulDegradation получает ставку сотрудника с graceful degradation
// При недоступности StaffService возвращает ErrServiceDegraded, что позволяет
// вызывающей стороне продолжить расчёт по базовой ставке категории
func (c *Client) GetHourlyRateWithGracefulDegradation(ctx context.Context, employeeID, locationID int64) (*float64, error) {
	c.log.Info("Fetching hourly rate for employee_id=%d, location_id=%d", employeeID, locationID)

	rate, err := c.GetHourlyRate(ctx, employeeID, locationID)
	if err != nil {
		// Бизнес-ошибку (сотрудник не найден) пробрасываем дальше
		if err == ErrEmployeeNotFound {
			c.log.Info("Employee id=%d not found in staff service", employeeID)
			return nil, err
		}

		// Для остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation - бронирование пойдёт по базовой ставке
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("StaffService unavailable, applying graceful degradation for employee_id=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: employee_id=%d, error=%v", ErrServiceDegraded, employeeID, err)
	}

	if rate == nil {
		c.log.Info("No personal rate set for employee_id=%d, location_id=%d", employeeID, locationID)
	}
	return rate, nil
}
