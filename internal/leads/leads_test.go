package leads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/david/scholarship-hunter/internal/models"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() Event {
	lead := models.Lead{ID: uuid.New(), ReportID: uuid.New(), Name: "Asha", Email: "asha@example.com", WhatsApp: "+91 98765 43210"}
	profile := &models.Profile{Major: "CS", GPA: 8.7, TargetCountries: []string{"UK", "Germany"}}
	return NewEvent(lead, profile, "₹15.8 Lakhs", 3, time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC))
}

func TestNewEvent(t *testing.T) {
	ev := testEvent()
	assert.Equal(t, "2026-10-16 08:30:00", ev.Timestamp)
	assert.Equal(t, "8.7", ev.GPA)
	assert.Equal(t, "+91 98765 43210", ev.Phone)
	assert.Equal(t, []string{"UK", "Germany"}, ev.Countries)

	bare := NewEvent(models.Lead{}, nil, "", 0, time.Now())
	assert.Equal(t, []string{}, bare.Countries)
	assert.Empty(t, bare.GPA)
}

func TestWebhookSink(t *testing.T) {
	var got Event
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ev := testEvent()
	require.NoError(t, NewWebhookSink(srv.URL, time.Second).Publish(context.Background(), ev))
	assert.Equal(t, ev, got)
}

func TestWebhookSink_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewWebhookSink(srv.URL, 0).Publish(context.Background(), testEvent())
	assert.ErrorContains(t, err, "500")
}

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaSink(t *testing.T) {
	fw := &fakeWriter{}
	sink := newKafkaSinkWith(fw)
	ev := testEvent()

	require.NoError(t, sink.Publish(context.Background(), ev))
	require.Len(t, fw.msgs, 1)
	assert.Equal(t, ev.ReportID, string(fw.msgs[0].Key))

	var decoded Event
	require.NoError(t, json.Unmarshal(fw.msgs[0].Value, &decoded))
	assert.Equal(t, ev, decoded)

	require.NoError(t, sink.Close())
	assert.True(t, fw.closed)
}

type stubSink struct {
	name  string
	err   error
	calls int
}

func (s *stubSink) Name() string { return s.name }
func (s *stubSink) Publish(context.Context, Event) error {
	s.calls++
	return s.err
}
func (s *stubSink) Close() error { return nil }

func TestMultiSink(t *testing.T) {
	ok := &stubSink{name: "ok"}
	bad := &stubSink{name: "bad", err: errors.New("boom")}
	worse := &stubSink{name: "worse", err: errors.New("bang")}

	m := NewMultiSink(bad, nil, ok, worse)
	assert.Equal(t, 3, m.Len())

	err := m.Publish(context.Background(), testEvent())
	require.Error(t, err)
	assert.Equal(t, 1, ok.calls, "a failing sink does not stop the others")
	assert.Equal(t, []string{"bad", "worse"}, FailedSinks(err))
	assert.ErrorContains(t, err, "bad: boom")

	assert.NoError(t, NewMultiSink().Publish(context.Background(), testEvent()))
	assert.Nil(t, FailedSinks(nil))
}
