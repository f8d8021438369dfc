package simulator

import (
	"bytes"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/kiddo_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine создает движок с быстрым циклом и без случайной паники
func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	engine, err := NewEngine(Config{
		HomeLatitude:      40.7128,
		HomeLongitude:     -74.0060,
		UpdateFrequency:   50.0,
		MaxWanderDistance: 500.0,
		PanicProbability:  0.0,
	}, logger)
	require.NoError(t, err)

	t.Cleanup(engine.Stop)
	return engine
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		HomeLatitude:      40.0,
		HomeLongitude:     -74.0,
		UpdateFrequency:   1.0,
		MaxWanderDistance: 2000.0,
		PanicProbability:  0.01,
	}
	require.NoError(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"latitude too big", func(c *Config) { c.HomeLatitude = 90.1 }},
		{"latitude too small", func(c *Config) { c.HomeLatitude = -90.1 }},
		{"longitude too big", func(c *Config) { c.HomeLongitude = 180.1 }},
		{"longitude too small", func(c *Config) { c.HomeLongitude = -180.1 }},
		{"zero frequency", func(c *Config) { c.UpdateFrequency = 0 }},
		{"negative frequency", func(c *Config) { c.UpdateFrequency = -1 }},
		{"zero wander", func(c *Config) { c.MaxWanderDistance = 0 }},
		{"negative probability", func(c *Config) { c.PanicProbability = -0.1 }},
		{"probability above one", func(c *Config) { c.PanicProbability = 1.1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEngine_StartIsIdempotent(t *testing.T) {
	engine := newTestEngine(t)

	engine.Start()
	engine.Start()
	assert.True(t, engine.IsRunning())

	engine.Stop()
	assert.False(t, engine.IsRunning())
}

func TestEngine_StopImmediatelyAfterStart(t *testing.T) {
	engine := newTestEngine(t)

	engine.Start()
	done := make(chan struct{})
	go func() {
		engine.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(stopTimeout + time.Second):
		t.Fatal("Stop did not return within timeout bound")
	}
	assert.False(t, engine.IsRunning())
}

func TestEngine_NotifiesLocationObserverWithinPeriod(t *testing.T) {
	engine := newTestEngine(t)

	updates := make(chan models.Location, 64)
	engine.AddLocationObserver(func(loc models.Location) error {
		select {
		case updates <- loc:
		default:
		}
		return nil
	})

	engine.Start()
	defer engine.Stop()

	select {
	case loc := <-updates:
		assert.GreaterOrEqual(t, loc.Latitude, -90.0)
		assert.LessOrEqual(t, loc.Latitude, 90.0)
		assert.GreaterOrEqual(t, loc.Longitude, -180.0)
		assert.LessOrEqual(t, loc.Longitude, 180.0)
		assert.NotEmpty(t, loc.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("no location update within one update period")
	}
}

func TestEngine_LocationStaysWithinWanderBounds(t *testing.T) {
	engine := newTestEngine(t)

	var mu sync.Mutex
	var seen []models.Location
	engine.AddLocationObserver(func(loc models.Location) error {
		mu.Lock()
		seen = append(seen, loc)
		mu.Unlock()
		return nil
	})

	engine.Start()
	time.Sleep(200 * time.Millisecond)
	engine.Stop()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seen)
	for _, loc := range seen {
		require.NoError(t, loc.Validate())
	}
}

func TestEngine_EmergencyTransitionTable(t *testing.T) {
	engine := newTestEngine(t)

	// normal -> resolve - no-op
	engine.ResolvePanic()
	assert.Equal(t, models.EmergencyNormal, engine.EmergencyState())

	// normal -> trigger -> panic
	engine.TriggerPanic()
	assert.Equal(t, models.EmergencyPanic, engine.EmergencyState())

	// panic -> trigger - идемпотентно
	engine.TriggerPanic()
	assert.Equal(t, models.EmergencyPanic, engine.EmergencyState())

	// panic -> reset - no-op
	engine.Reset()
	assert.Equal(t, models.EmergencyPanic, engine.EmergencyState())

	// panic -> resolve -> resolved
	engine.ResolvePanic()
	assert.Equal(t, models.EmergencyResolved, engine.EmergencyState())

	// resolved -> reset -> normal
	engine.Reset()
	assert.Equal(t, models.EmergencyNormal, engine.EmergencyState())
}

func TestEngine_EmergencyObserverOrderAndCount(t *testing.T) {
	engine := newTestEngine(t)

	var mu sync.Mutex
	var order []string
	engine.AddEmergencyObserver(func(state models.EmergencyState) error {
		mu.Lock()
		order = append(order, "first:"+state.String())
		mu.Unlock()
		return nil
	})
	engine.AddEmergencyObserver(func(state models.EmergencyState) error {
		mu.Lock()
		order = append(order, "second:"+state.String())
		mu.Unlock()
		return nil
	})

	engine.TriggerPanic()
	engine.TriggerPanic() // идемпотентный повтор не должен дать второго уведомления

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first:panic", "second:panic"}, order)
}

func TestEngine_ObserverErrorDoesNotBlockOthers(t *testing.T) {
	engine := newTestEngine(t)

	var called bool
	engine.AddEmergencyObserver(func(models.EmergencyState) error {
		return fmt.Errorf("observer failed")
	})
	engine.AddEmergencyObserver(func(models.EmergencyState) error {
		panic("observer panicked")
	})
	engine.AddEmergencyObserver(func(models.EmergencyState) error {
		called = true
		return nil
	})

	engine.TriggerPanic()
	assert.True(t, called)
	assert.Equal(t, models.EmergencyPanic, engine.EmergencyState())
}

func TestEngine_SetLocation(t *testing.T) {
	engine := newTestEngine(t)

	notified := make(chan models.Location, 1)
	engine.AddLocationObserver(func(loc models.Location) error {
		notified <- loc
		return nil
	})

	loc, err := models.NewLocation(55.75, 37.61, "")
	require.NoError(t, err)
	require.NoError(t, engine.SetLocation(loc))

	got := engine.CurrentLocation()
	assert.Equal(t, 55.75, got.Latitude)
	assert.Equal(t, 37.61, got.Longitude)
	assert.NotEmpty(t, got.Timestamp) // пустая метка заменяется текущим временем

	select {
	case sent := <-notified:
		assert.Equal(t, got, sent)
	case <-time.After(time.Second):
		t.Fatal("location observer was not notified on manual set")
	}
}

func TestEngine_SetLocationRejectsInvalid(t *testing.T) {
	engine := newTestEngine(t)

	err := engine.SetLocation(models.Location{Latitude: 91, Longitude: 0})
	assert.Error(t, err)
}

func TestEngine_ObserverCanCallBackIntoEngine(t *testing.T) {
	engine := newTestEngine(t)

	done := make(chan struct{}, 1)
	engine.AddEmergencyObserver(func(state models.EmergencyState) error {
		// Повторный вход в движок из коллбэка не должен приводить к дедлоку
		_ = engine.EmergencyState()
		_ = engine.CurrentLocation()
		select {
		case done <- struct{}{}:
		default:
		}
		return nil
	})

	finished := make(chan struct{})
	go func() {
		engine.TriggerPanic()
		close(finished)
	}()

	select {
	case <-finished:
		<-done
	case <-time.After(2 * time.Second):
		t.Fatal("re-entrant observer deadlocked the engine")
	}
}
