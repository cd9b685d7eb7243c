package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/david/scholarship-hunter/internal/notify"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendNotification_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad json", `{"email":`, "Invalid JSON body"},
		{"missing email", `{"type":"welcome","name":"A","reportLink":"x"}`, "Missing email"},
		{"missing type", `{"email":"a@b.co","name":"A","reportLink":"x"}`, "Missing type"},
		{"missing name", `{"email":"a@b.co","type":"welcome","reportLink":"x"}`, "Missing name"},
		{"missing link", `{"email":"a@b.co","type":"welcome","name":"A"}`, "Missing reportLink"},
		{"email checked first", `{}`, "Missing email"},
		{"unknown type", `{"email":"a@b.co","type":"digest","name":"A","reportLink":"x"}`, "Unknown email type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(http.MethodPost, "/api/notifications/send", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"success":false,"error":"`+tt.want+`"}`, rec.Body.String())
		})
	}
}

func TestSendNotification_Welcome(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg notify.Message) (string, error) {
			assert.Equal(t, "asha@example.com", msg.To)
			assert.Equal(t, notify.WelcomeSubject, msg.Subject)
			assert.Contains(t, msg.HTML, "https://hunter.example/report/abc")
			assert.Contains(t, msg.HTML, "Asha")
			return "id-1", nil
		})

	rec := env.do(http.MethodPost, "/api/notifications/send",
		`{"type":"welcome","email":"asha@example.com","name":"Asha","reportLink":"https://hunter.example/report/abc"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestSendNotification_SendFails(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("resend: 422"))

	rec := env.do(http.MethodPost, "/api/notifications/send",
		`{"type":"welcome","email":"asha@example.com","name":"Asha","reportLink":"https://hunter.example/report/abc"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to send email"}`, rec.Body.String())
}
