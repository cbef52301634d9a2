package staffdir

import (
	"bytes"
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
	Error(format string, v ...interface{})
}

// Client клиент для работы со справочником персонала
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника персонала
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStaffMember получает сотрудника по ID
func (c *Client) GetStaffMember(ctx context.Context, userID int64) (*StaffMember, error) {
	url := fmt.Sprintf("%s/internal/staff/%d", c.baseURL, userID)

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
		return nil, fmt.Errorf("%w: invalid staff ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrStaffNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var member StaffMember
	if err := json.NewDecoder(resp.Body).Decode(&member); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &member, nil
}

// ResolveNames резолвит имена сотрудников по списку ID одним batch-запросом.
// Сотрудники, отсутствующие в справочнике, просто не попадают в ответ.
func (c *Client) ResolveNames(ctx context.Context, userIDs []int64) (map[int64]StaffMember, error) {
	if len(userIDs) == 0 {
		return map[int64]StaffMember{}, nil
	}

	payload, err := json.Marshal(resolveRequest{UserIDs: userIDs})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/staff/resolve", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var decoded resolveResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	members := make(map[int64]StaffMember, len(decoded.Members))
	for _, m := range decoded.Members {
		members[m.ID] = m
	}

	return members, nil
}

// ResolveNamesWithGracefulDegradation резолвит имена сотрудников с graceful degradation.
// При недоступности справочника возвращает ErrServiceDegraded, что позволяет
// собрать расписание с идентификаторами вместо имен.
func (c *Client) ResolveNamesWithGracefulDegradation(ctx context.Context, userIDs []int64) (map[int64]StaffMember, error) {
	c.log.Info("Resolving %d staff names", len(userIDs))

	members, err := c.ResolveNames(ctx, userIDs)
	if err != nil {
		// Для всех ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("Staff directory unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: requested=%d, error=%v", ErrServiceDegraded, len(userIDs), err)
	}

	c.log.Info("Successfully resolved %d of %d staff names", len(members), len(userIDs))
	return members, nil
}
