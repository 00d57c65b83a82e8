package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	SetProvider(provider MessageProvider)
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider resolves messages from a Bundle in a given language.
type BundleMessageProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewBundleMessageProvider returns a provider reading the bundle's default language.
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle, lang: bundle.DefaultLanguage()}
}

// NewBundleMessageProviderFor returns a provider reading the given language.
func NewBundleMessageProviderFor(bundle *Bundle, lang language.Tag) *BundleMessageProvider {
	return &BundleMessageProvider{bundle: bundle, lang: bundle.Match(lang)}
}

func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}
	if msg, ok := p.bundle.message(p.lang, key); ok {
		return msg
	}
	if msg, ok := p.bundle.message(p.bundle.DefaultLanguage(), key); ok {
		return msg
	}

	return key
}

// TrError represents a translatable error with optional formatting arguments,
// error wrapping and an optional parent category.
//
// Example usage:
//
//	ErrCategory := NewError("app.error")
//	ErrDetail := NewChildError("app.error.detail", ErrCategory)
//	err := ErrDetail.WithArgs("field")
//	errors.Is(err, ErrCategory) // true
type TrError struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	// The translation key
	key string
	// Optional format arguments
	args []interface{}
	// Optional wrapped error
	wrapped error
	// Optional category this error belongs to
	parent error

	mu              sync.RWMutex
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel:        errors.New(key),
		key:             key,
		messageProvider: getDefaultProvider(),
	}
}

// NewChildError creates a new translatable error that also matches parent when
// compared with errors.Is.
func NewChildError(key string, parent error) *TrError {
	e := NewError(key)
	e.parent = parent
	return e
}

// Error returns the message of the current provider, formatted with args if provided
func (e *TrError) Error() string {
	e.mu.RLock()
	provider := e.messageProvider
	e.mu.RUnlock()

	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	c := e.clone()
	c.args = args
	return c
}

// Wrap returns a copy of the error wrapping err
func (e *TrError) Wrap(err error) TranslatableError {
	c := e.clone()
	c.wrapped = err
	return c
}

// Is matches the sentinel of the error and, failing that, its parent category.
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok && e.sentinel == t.sentinel {
		return true
	}
	if target == e.sentinel {
		return true
	}

	return e.parent != nil && errors.Is(e.parent, target)
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

func (e *TrError) SetProvider(provider MessageProvider) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.messageProvider = provider
}

func (e *TrError) clone() *TrError {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         e.wrapped,
		parent:          e.parent,
		messageProvider: e.messageProvider,
	}
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider sets the provider used by errors created afterwards
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}
	return defaultProvider
}
