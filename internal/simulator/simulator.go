package simulator

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/shenikar/kiddo_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

// metersPerDegree - приближенное число метров в одном градусе широты.
// Для долготы масштабируется на cos(широты). Приближение намеренное:
// на радиусах блуждания в пределах города его погрешность несущественна.
const metersPerDegree = 111111.0

// stopTimeout - ограничение ожидания завершения фонового цикла в Stop()
const stopTimeout = 2 * time.Second

// LocationObserver получает копию новой позиции после каждого обновления
type LocationObserver func(models.Location) error

// EmergencyObserver получает новое состояние тревоги после каждого принятого перехода
type EmergencyObserver func(models.EmergencyState) error

// Config - настройки симулятора движения
type Config struct {
	HomeLatitude      float64
	HomeLongitude     float64
	UpdateFrequency   float64 // Гц
	MaxWanderDistance float64 // метры
	PanicProbability  float64 // [0, 1]
}

// Validate проверяет настройки; невалидная конфигурация - ошибка создания, не рантайма
func (c Config) Validate() error {
	if c.HomeLatitude < -90 || c.HomeLatitude > 90 {
		return fmt.Errorf("home latitude must be between -90 and 90, got %v", c.HomeLatitude)
	}
	if c.HomeLongitude < -180 || c.HomeLongitude > 180 {
		return fmt.Errorf("home longitude must be between -180 and 180, got %v", c.HomeLongitude)
	}
	if c.UpdateFrequency <= 0 {
		return fmt.Errorf("update frequency must be positive, got %v", c.UpdateFrequency)
	}
	if c.MaxWanderDistance <= 0 {
		return fmt.Errorf("max wander distance must be positive, got %v", c.MaxWanderDistance)
	}
	if c.PanicProbability < 0 || c.PanicProbability > 1 {
		return fmt.Errorf("panic probability must be between 0 and 1, got %v", c.PanicProbability)
	}
	return nil
}

// Engine - симулятор движения отслеживаемого объекта.
// Единственный владелец текущей позиции и состояния тревоги; оба поля
// защищены одним мьютексом. Наблюдатели уведомляются вне мьютекса по
// снапшоту списка, чтобы коллбэк мог безопасно вызывать методы движка.
type Engine struct {
	cfg    Config
	logger *logrus.Logger
	rnd    *rand.Rand

	mu           sync.Mutex
	current      models.Location
	emergency    models.EmergencyState
	running      bool
	stopCh       chan struct{}
	doneCh       chan struct{}
	locationObs  []LocationObserver
	emergencyObs []EmergencyObserver
}

// NewEngine создает симулятор в домашней точке в состоянии normal
func NewEngine(cfg Config, logger *logrus.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("simulator: invalid config: %w", err)
	}

	home, err := models.NewLocationNow(cfg.HomeLatitude, cfg.HomeLongitude)
	if err != nil {
		return nil, fmt.Errorf("simulator: invalid home location: %w", err)
	}

	return &Engine{
		cfg:       cfg,
		logger:    logger,
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		current:   home,
		emergency: models.EmergencyNormal,
	}, nil
}

// AddLocationObserver регистрирует наблюдателя обновлений позиции
func (e *Engine) AddLocationObserver(obs LocationObserver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.locationObs = append(e.locationObs, obs)
}

// AddEmergencyObserver регистрирует наблюдателя смены состояния тревоги
func (e *Engine) AddEmergencyObserver(obs EmergencyObserver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.emergencyObs = append(e.emergencyObs, obs)
}

// Start запускает фоновый цикл обновления. Повторный запуск - no-op.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return
	}
	e.running = true
	e.stopCh = make(chan struct{})
	e.doneCh = make(chan struct{})
	go e.loop(e.stopCh, e.doneCh)
	e.logger.WithField("update_frequency", e.cfg.UpdateFrequency).Info("Simulator started")
}

// Stop останавливает цикл и ждет его завершения не дольше stopTimeout.
// После возврата новых уведомлений от тиков не будет; зависший цикл
// не блокирует вызывающего - фиксируется предупреждением.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	stopCh, doneCh := e.stopCh, e.doneCh
	e.stopCh, e.doneCh = nil, nil
	e.mu.Unlock()

	close(stopCh)
	select {
	case <-doneCh:
		e.logger.Info("Simulator stopped")
	case <-time.After(stopTimeout):
		e.logger.Warnf("Simulator loop did not stop within %v", stopTimeout)
	}
}

// IsRunning сообщает, запущен ли фоновый цикл
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// CurrentLocation возвращает копию текущей позиции
func (e *Engine) CurrentLocation() models.Location {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// EmergencyState возвращает текущее состояние тревоги
func (e *Engine) EmergencyState() models.EmergencyState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.emergency
}

// SetLocation вручную заменяет текущую позицию и уведомляет наблюдателей
func (e *Engine) SetLocation(loc models.Location) error {
	if err := loc.Validate(); err != nil {
		return fmt.Errorf("simulator: set location: %w", err)
	}
	if loc.Timestamp == "" {
		loc.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	e.mu.Lock()
	e.current = loc
	obs := append([]LocationObserver(nil), e.locationObs...)
	e.mu.Unlock()

	e.notifyLocation(obs, loc)
	return nil
}

// TriggerPanic переводит normal -> panic. Повторный вызов в panic - no-op.
func (e *Engine) TriggerPanic() {
	e.transition(models.EmergencyNormal, models.EmergencyPanic)
}

// ResolvePanic переводит panic -> resolved. Вне panic - no-op.
func (e *Engine) ResolvePanic() {
	e.transition(models.EmergencyPanic, models.EmergencyResolved)
}

// Reset переводит resolved -> normal. Вне resolved - no-op.
func (e *Engine) Reset() {
	e.transition(models.EmergencyResolved, models.EmergencyNormal)
}

// transition выполняет переход from -> to, если текущее состояние равно from,
// и уведомляет наблюдателей принятого перехода в порядке регистрации
func (e *Engine) transition(from, to models.EmergencyState) {
	e.mu.Lock()
	if e.emergency != from {
		e.mu.Unlock()
		return
	}
	e.emergency = to
	obs := append([]EmergencyObserver(nil), e.emergencyObs...)
	e.mu.Unlock()

	e.logger.WithFields(logrus.Fields{
		"from": from,
		"to":   to,
	}).Info("Emergency state changed")
	e.notifyEmergency(obs, to)
}

// loop - фоновый цикл обновления позиции. Ошибка одного тика логируется,
// цикл продолжает работу после обычной межтиковой задержки.
func (e *Engine) loop(stopCh, doneCh chan struct{}) {
	defer close(doneCh)

	interval := time.Duration(float64(time.Second) / e.cfg.UpdateFrequency)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			e.tick()
		}
	}
}

// tick делает один шаг симуляции: случайное смещение, обновление позиции,
// уведомление наблюдателей и розыгрыш вероятности паники
func (e *Engine) tick() {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorf("Recovered from panic in simulation tick: %v", r)
		}
	}()

	e.mu.Lock()
	bearing := e.rnd.Float64() * 2 * math.Pi
	distance := e.rnd.Float64() * e.cfg.MaxWanderDistance

	latOffset := distance * math.Cos(bearing) / metersPerDegree
	lonOffset := distance * math.Sin(bearing) / (metersPerDegree * math.Cos(radians(e.current.Latitude)))

	newLat := clamp(e.current.Latitude+latOffset, -90, 90)
	newLon := clamp(e.current.Longitude+lonOffset, -180, 180)

	loc := models.Location{
		Latitude:  newLat,
		Longitude: newLon,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	e.current = loc
	obs := append([]LocationObserver(nil), e.locationObs...)
	triggerPanic := e.emergency == models.EmergencyNormal && e.rnd.Float64() < e.cfg.PanicProbability
	e.mu.Unlock()

	e.notifyLocation(obs, loc)

	if triggerPanic {
		e.logger.Warn("Random panic triggered by simulator")
		e.TriggerPanic()
	}
}

// notifyLocation уведомляет наблюдателей позиции в порядке регистрации.
// Ошибка или panic в одном наблюдателе не мешает остальным.
func (e *Engine) notifyLocation(obs []LocationObserver, loc models.Location) {
	for _, cb := range obs {
		e.safeNotify(func() error { return cb(loc) }, "location")
	}
}

// notifyEmergency уведомляет наблюдателей тревоги в порядке регистрации
func (e *Engine) notifyEmergency(obs []EmergencyObserver, state models.EmergencyState) {
	for _, cb := range obs {
		e.safeNotify(func() error { return cb(state) }, "emergency")
	}
}

func (e *Engine) safeNotify(fn func() error, kind string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Errorf("Recovered from panic in %s observer: %v", kind, r)
		}
	}()
	if err := fn(); err != nil {
		e.logger.WithError(err).Errorf("Error in %s observer", kind)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
