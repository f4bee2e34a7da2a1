package sendgrid_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lusakaeats/restaurant-ordering-platform/internal/models"
	sendgridclient "github.com/lusakaeats/restaurant-ordering-platform/pkg/sendgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMail struct {
	Personalizations []struct {
		To      []map[string]string `json:"to"`
		Subject string              `json:"subject"`
	} `json:"personalizations"`
	From    map[string]string `json:"from"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

func newServiceAgainst(t *testing.T, handler http.HandlerFunc) (sendgridclient.EmailService, *capturedMail) {
	t.Helper()

	captured := &capturedMail{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	svc := sendgridclient.NewEmailService("SG.test-key", "orders@lusakaeats.com", "Lusaka Eats")
	svc.GetSendGridClient().Request.BaseURL = server.URL

	return svc, captured
}

func TestSendOrderReceipt(t *testing.T) {
	ctx := t.Context()

	receipt := &models.EmailNotificationRequest{
		To:      "customer@example.com",
		Subject: "Your order is in the kitchen",
		Content: "2 x Pani Puri - K90\nTotal: K90\n",
	}

	t.Run("Accepted delivery", func(t *testing.T) {
		svc, captured := newServiceAgainst(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer SG.test-key", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusAccepted)
		})

		require.NoError(t, svc.Send(ctx, receipt))

		require.Len(t, captured.Personalizations, 1)
		pers := captured.Personalizations[0]
		require.Len(t, pers.To, 1)
		assert.Equal(t, "customer@example.com", pers.To[0]["email"])
		assert.Equal(t, "Your order is in the kitchen", pers.Subject)
		assert.Equal(t, "orders@lusakaeats.com", captured.From["email"])
		assert.Equal(t, "Lusaka Eats", captured.From["name"])
		require.Len(t, captured.Content, 1)
		assert.Equal(t, "text/plain", captured.Content[0].Type)
		assert.Contains(t, captured.Content[0].Value, "Pani Puri")
	})

	t.Run("HTML content adds a second block", func(t *testing.T) {
		svc, captured := newServiceAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})

		withHTML := *receipt
		withHTML.HTMLContent = "<p>Total: K90</p>"

		require.NoError(t, svc.Send(ctx, &withHTML))

		require.Len(t, captured.Content, 2)
		assert.Equal(t, "text/html", captured.Content[1].Type)
	})

	t.Run("Rejected delivery surfaces the status", func(t *testing.T) {
		svc, _ := newServiceAgainst(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		err := svc.Send(ctx, receipt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
	})
}
