package mail

import (
	"context"
	htmltemplate "html/template"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharecare/config"
)

func TestRenderBody_IncludesFields(t *testing.T) {
	body, err := renderBody(confirmationTmpl, mailData{
		Name:       "Jamie",
		ItemName:   "Sourdough bread",
		TrackingID: "SC250830A1B2C3",
	})

	require.NoError(t, err)
	assert.Contains(t, body, "Good news, Jamie!")
	assert.Contains(t, body, "Sourdough bread")
	assert.Contains(t, body, "<strong>SC250830A1B2C3</strong>")
}

func TestRenderBody_EscapesUserInput(t *testing.T) {
	body, err := renderBody(welcomeTmpl, mailData{Name: `<script>alert("x")</script>`})

	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestRenderBody_EveryTemplate(t *testing.T) {
	data := mailData{
		Name:          "Jamie",
		RequesterName: "Alex",
		ItemName:      "Winter coat",
		TrackingID:    "SC250830A1B2C3",
		Status:        "ready_for_pickup",
	}

	tests := []struct {
		name     string
		tmpl     *htmltemplate.Template
		contains string
	}{
		{"Welcome", welcomeTmpl, "Welcome to ShareCare, Jamie!"},
		{"Login", loginTmpl, "You just signed in"},
		{"Donation confirmation", donationTmpl, "Winter coat"},
		{"Reservation request", requestTmpl, "Alex has requested your item"},
		{"Reservation confirmation", confirmationTmpl, "SC250830A1B2C3"},
		{"Tracking update", trackingTmpl, "ready_for_pickup"},
		{"Account deletion", deletionTmpl, "Goodbye, Jamie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := renderBody(tt.tmpl, data)
			require.NoError(t, err)
			assert.Contains(t, body, tt.contains)
		})
	}
}

func TestSMTPService_DisabledSkipsDelivery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSMTPService(&config.Config{
		SMTP: &config.SMTPConfig{
			From:    "ShareCare <noreply@sharecare.app>",
			Enabled: false,
		},
	}, logger)

	err := svc.SendWelcome(context.Background(), "someone@example.com", "Jamie")
	assert.NoError(t, err)
}

func TestSMTPService_EmptyRecipientIsNoop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewSMTPService(&config.Config{}, logger)

	err := svc.SendAccountDeletion(context.Background(), "", "Jamie")
	assert.NoError(t, err)
}
