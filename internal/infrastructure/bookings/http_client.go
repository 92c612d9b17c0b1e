package bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/jhoicas/Amenidades-api/internal/application/spotcheck"
	"github.com/jhoicas/Amenidades-api/internal/domain/entity"
	"github.com/jhoicas/Amenidades-api/pkg/config"
)

var _ spotcheck.BookingSource = (*HTTPClient)(nil)

// HTTPClient consume el API externo de reservas sobre HTTP/JSON.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPClient construye el cliente a partir de la configuración.
func NewHTTPClient(cfg config.BookingsConfig) *HTTPClient {
	return &HTTPClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  http.DefaultClient,
	}
}

// bookingPayload es la forma de cada reserva en la respuesta del API.
type bookingPayload struct {
	ID       string `json:"id"`
	Guests   int    `json:"guests"`
	Nights   int    `json:"nights"`
	RoomType string `json:"room_type"`
	CheckIn  string `json:"check_in"` // YYYY-MM-DD
}

// FetchBookings obtiene las reservas cuyo check-in cae en [from, to].
// Cualquier error de red, estado no-200 o cuerpo malformado se propaga tal
// cual al llamador; la ejecución del spot check queda detenida en esa etapa.
func (c *HTTPClient) FetchBookings(ctx context.Context, from, to time.Time) ([]entity.Booking, error) {
	endpoint, err := url.Parse(c.baseURL + "/bookings")
	if err != nil {
		return nil, fmt.Errorf("bookings url: %w", err)
	}
	q := endpoint.Query()
	q.Set("from", from.Format("2006-01-02"))
	q.Set("to", to.Format("2006-01-02"))
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("bookings request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bookings api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bookings api: status %d", resp.StatusCode)
	}

	var payload []bookingPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("bookings api: respuesta malformada: %w", err)
	}

	list := make([]entity.Booking, 0, len(payload))
	for _, p := range payload {
		checkIn, err := time.Parse("2006-01-02", p.CheckIn)
		if err != nil {
			return nil, fmt.Errorf("bookings api: check_in inválido %q: %w", p.CheckIn, err)
		}
		list = append(list, entity.Booking{
			ID:       p.ID,
			Guests:   p.Guests,
			Nights:   p.Nights,
			RoomType: p.RoomType,
			CheckIn:  checkIn,
		})
	}
	return list, nil
}
