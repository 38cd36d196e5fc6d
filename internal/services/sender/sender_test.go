package services_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/product-catalog/internal/lib/smtp"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	services "github.com/magabrotheeeer/product-catalog/internal/services/sender"
)

// Мок для TransportInterface
type TransportMock struct {
	mock.Mock
}

func (m *TransportMock) Connect() (smtp.Client, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(smtp.Client), args.Error(1)
}

func (m *TransportMock) GetSMTPUser() string {
	args := m.Called()
	return args.String(0)
}

// Мок для Client
type ClientMock struct {
	mock.Mock
	written bytes.Buffer
}

func (m *ClientMock) Mail(from string) error {
	args := m.Called(from)
	return args.Error(0)
}

func (m *ClientMock) Rcpt(to string) error {
	args := m.Called(to)
	return args.Error(0)
}

func (m *ClientMock) Data() (io.WriteCloser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.WriteCloser), args.Error(1)
}

func (m *ClientMock) Quit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *ClientMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

func newSenderService(transport *TransportMock) *services.SenderService {
	log := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	return services.NewSenderService(log, transport)
}

func TestSenderService_SendWelcomeEmail(t *testing.T) {
	body, err := json.Marshal(models.WelcomeInfo{Email: "a@x.com", Username: "alice"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		buf := &bytes.Buffer{}
		clientMock := new(ClientMock)
		clientMock.On("Mail", "noreply@catalog.local").Return(nil).Once()
		clientMock.On("Rcpt", "a@x.com").Return(nil).Once()
		clientMock.On("Data").Return(nopWriteCloser{buf}, nil).Once()
		clientMock.On("Quit").Return(nil).Once()
		clientMock.On("Close").Return(nil).Once()

		transportMock := new(TransportMock)
		transportMock.On("Connect").Return(clientMock, nil).Once()
		transportMock.On("GetSMTPUser").Return("noreply@catalog.local")

		svc := newSenderService(transportMock)
		err := svc.SendWelcomeEmail(body)
		require.NoError(t, err)

		msg := buf.String()
		assert.Contains(t, msg, "To: a@x.com")
		assert.Contains(t, msg, "Subject: Добро пожаловать в Product Catalog")
		assert.Contains(t, msg, "Здравствуйте, alice!")

		clientMock.AssertExpectations(t)
		transportMock.AssertExpectations(t)
	})

	t.Run("invalid message body", func(t *testing.T) {
		transportMock := new(TransportMock)
		svc := newSenderService(transportMock)

		err := svc.SendWelcomeEmail([]byte("{not json"))
		require.Error(t, err)
		transportMock.AssertNotCalled(t, "Connect")
	})

	t.Run("connect failure", func(t *testing.T) {
		transportMock := new(TransportMock)
		transportMock.On("GetSMTPUser").Return("noreply@catalog.local")
		transportMock.On("Connect").Return(nil, errors.New("dial tcp: connection refused")).Once()

		svc := newSenderService(transportMock)
		err := svc.SendWelcomeEmail(body)
		require.Error(t, err)
	})

	t.Run("rcpt failure", func(t *testing.T) {
		clientMock := new(ClientMock)
		clientMock.On("Mail", "noreply@catalog.local").Return(nil).Once()
		clientMock.On("Rcpt", "a@x.com").Return(errors.New("550 mailbox unavailable")).Once()
		clientMock.On("Close").Return(nil).Once()

		transportMock := new(TransportMock)
		transportMock.On("Connect").Return(clientMock, nil).Once()
		transportMock.On("GetSMTPUser").Return("noreply@catalog.local")

		svc := newSenderService(transportMock)
		err := svc.SendWelcomeEmail(body)
		require.Error(t, err)
		clientMock.AssertExpectations(t)
	})
}
