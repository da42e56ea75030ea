// Package sloghooks logs the four cache events through log/slog.
//
// Hits and sets fire on every warmed read, so both can be sampled to
// avoid log floods. Keys may carry user identifiers; by default they
// are redacted to a short SHA-256 prefix before logging.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/tiercache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	HitEvery uint64
	SetEvery uint64
	// Optional key redactor. Defaults to a SHA-256 prefix.
	Redact func(string) string
}

type Hooks[K comparable, V any] struct {
	l    *slog.Logger
	opts Options

	hitCtr atomic.Uint64
	setCtr atomic.Uint64
}

var _ tiercache.Hooks[string, any] = (*Hooks[string, any])(nil)

func New[K comparable, V any](l *slog.Logger, opts Options) *Hooks[K, V] {
	return &Hooks[K, V]{l: l, opts: opts}
}

func (h *Hooks[K, V]) redact(key K) string {
	s := fmt.Sprint(key)
	if h.opts.Redact != nil {
		return h.opts.Redact(s)
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks[K, V]) Hit(key K, _ V) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug(tiercache.EventHit.String(), "key", h.redact(key))
}

func (h *Hooks[K, V]) Miss(key K) {
	if h.l == nil {
		return
	}
	h.l.Debug(tiercache.EventMiss.String(), "key", h.redact(key))
}

func (h *Hooks[K, V]) Set(key K, _ V) {
	if h.l == nil || !sample(h.opts.SetEvery, &h.setCtr) {
		return
	}
	h.l.Debug(tiercache.EventSet.String(), "key", h.redact(key))
}

func (h *Hooks[K, V]) Deleted(key K) {
	if h.l == nil {
		return
	}
	h.l.Info(tiercache.EventDeleted.String(), "key", h.redact(key))
}
