package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clubrelay/internal/domain/entity"
	domainerrors "clubrelay/internal/domain/errors"
	mockUsecase "clubrelay/internal/mocks/usecase"
	"clubrelay/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWebhookHandler_WooCommerce(t *testing.T) {
	const body = `{"id":9001,"status":"completed","billing":{"email":"member@club.test"}}`

	tests := []struct {
		name          string
		target        string
		headers       map[string]string
		wantTopic     string
		wantSignature string
	}{
		{
			name:   "woocommerce headers",
			target: "/webhooks/woocommerce",
			headers: map[string]string{
				HeaderWCTopic:       "order.updated",
				HeaderWCSignature:   "sig-header",
				HeaderWebhookSecret: "ignored",
			},
			wantTopic:     "order.updated",
			wantSignature: "sig-header",
		},
		{
			name:          "secret header",
			target:        "/webhooks/woocommerce?topic=subscription.updated",
			headers:       map[string]string{HeaderWebhookSecret: "shared"},
			wantTopic:     "subscription.updated",
			wantSignature: "shared",
		},
		{
			name:          "query fallbacks",
			target:        "/webhooks/woocommerce?topic=order.created&secret=from-query",
			wantTopic:     "order.created",
			wantSignature: "from-query",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockWebhookUsecase(t)
			h := NewWebhookHandler(WebhookHandlerParams{WebhookUC: uc, Logger: discardLogger()})
			e := newTestEcho()
			e.POST("/webhooks/woocommerce", h.WooCommerce)

			uc.EXPECT().
				Ingest(mock.Anything, &usecase.WebhookDelivery{
					Topic:     tt.wantTopic,
					Body:      []byte(body),
					Signature: tt.wantSignature,
				}).
				Return(&entity.IngestResult{
					Accepted:   true,
					Processed:  true,
					ResourceID: "9001",
					Status:     "completed",
					Topic:      tt.wantTopic,
					Dispatch:   &entity.DispatchResult{Success: false, Error: "no matching user"},
				}, nil).
				Once()

			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(body))
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var got map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, true, got["success"])
			assert.Equal(t, true, got["processed"])
			assert.Equal(t, false, got["dedup"])
			assert.Equal(t, "9001", got["resourceId"])
			assert.Contains(t, got, "dispatch")
		})
	}
}

func TestWebhookHandler_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{name: "bad signature", ucErr: domainerrors.ErrInvalidSignature, wantStatus: http.StatusUnauthorized, wantCode: "INVALID_SIGNATURE"},
		{name: "not json", ucErr: domainerrors.ErrInvalidWebhookPayload.WithDetails("body is not a JSON object"), wantStatus: http.StatusBadRequest, wantCode: "INVALID_WEBHOOK_PAYLOAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockWebhookUsecase(t)
			h := NewWebhookHandler(WebhookHandlerParams{WebhookUC: uc, Logger: discardLogger()})
			e := newTestEcho()
			e.POST("/webhooks/woocommerce", h.WooCommerce)

			uc.EXPECT().Ingest(mock.Anything, mock.Anything).Return(nil, tt.ucErr).Once()

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/webhooks/woocommerce", strings.NewReader("<xml/>")))

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec, nil)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}
