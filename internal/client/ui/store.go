// Package ui holds transient presentation state: a global loading flag,
// sidebar and mobile menu flags, auto-expiring toasts and a single modal.
package ui

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultToastDuration время жизни toast по умолчанию
const DefaultToastDuration = 3 * time.Second

// ToastType вид уведомления
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastWarning ToastType = "warning"
	ToastInfo    ToastType = "info"
)

// Toast уведомление
type Toast struct {
	ID       string
	Type     ToastType
	Message  string
	Duration time.Duration
}

// Modal диалог. Одновременно активен только один.
type Modal struct {
	OnConfirm func()
	OnCancel  func()
	ID        string
	Title     string
	Content   string
}

// ToastOption настраивает toast при добавлении
type ToastOption func(*Toast)

// WithDuration задает время жизни, d <= 0 отключает автоудаление
func WithDuration(d time.Duration) ToastOption {
	return func(t *Toast) {
		t.Duration = d
	}
}

// Store состояние интерфейса
type Store struct {
	timers         map[string]*time.Timer
	modal          *Modal
	newID          func() string
	loadingText    string
	toasts         []Toast
	mu             sync.Mutex
	loading        bool
	sidebarOpen    bool
	mobileMenuOpen bool
}

// New создает хранилище. Боковая панель изначально открыта.
func New() *Store {
	return &Store{
		timers:      make(map[string]*time.Timer),
		newID:       uuid.NewString,
		sidebarOpen: true,
	}
}

// SetLoading задает глобальный флаг загрузки, последний вызов побеждает
func (s *Store) SetLoading(loading bool, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
	s.loadingText = text
}

// Loading возвращает флаг загрузки и текст
func (s *Store) Loading() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.loadingText
}

// ToggleSidebar переключает боковую панель
func (s *Store) ToggleSidebar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = !s.sidebarOpen
}

// SetSidebarOpen задает состояние боковой панели
func (s *Store) SetSidebarOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = open
}

// IsSidebarOpen сообщает, открыта ли боковая панель
func (s *Store) IsSidebarOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebarOpen
}

// ToggleMobileMenu переключает мобильное меню
func (s *Store) ToggleMobileMenu() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mobileMenuOpen = !s.mobileMenuOpen
}

// SetMobileMenuOpen задает состояние мобильного меню
func (s *Store) SetMobileMenuOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mobileMenuOpen = open
}

// IsMobileMenuOpen сообщает, открыто ли мобильное меню
func (s *Store) IsMobileMenuOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mobileMenuOpen
}

// AddToast добавляет уведомление в конец очереди и возвращает его id.
// Уведомление удаляется само через Duration, если Duration > 0.
func (s *Store) AddToast(typ ToastType, message string, opts ...ToastOption) string {
	toast := Toast{
		Type:     typ,
		Message:  message,
		Duration: DefaultToastDuration,
	}
	for _, opt := range opts {
		opt(&toast)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	toast.ID = s.newID()
	s.toasts = append(s.toasts, toast)

	if toast.Duration > 0 {
		id := toast.ID
		s.timers[id] = time.AfterFunc(toast.Duration, func() {
			s.expire(id)
		})
	}

	return toast.ID
}

// RemoveToast удаляет уведомление по id, отсутствующий id игнорируется
func (s *Store) RemoveToast(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

// ClearToasts удаляет все уведомления и останавливает их таймеры
func (s *Store) ClearToasts() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.toasts = nil
}

// Toasts возвращает копию очереди уведомлений в порядке добавления
func (s *Store) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.toasts)
}

// OpenModal открывает диалог, заменяя активный, и возвращает его id
func (s *Store) OpenModal(m Modal) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.newID()
	s.modal = &m
	return m.ID
}

// CloseModal закрывает активный диалог
func (s *Store) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal = nil
}

// ActiveModal возвращает копию активного диалога или nil
func (s *Store) ActiveModal() *Modal {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modal == nil {
		return nil
	}
	m := *s.modal
	return &m
}

// expire вызывается таймером toast
func (s *Store) expire(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *Store) removeLocked(id string) {
	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
	s.toasts = slices.DeleteFunc(s.toasts, func(t Toast) bool {
		return t.ID == id
	})
}
