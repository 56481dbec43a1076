package service

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrEventFull         = errors.New("event is full")
	ErrPaymentNotFound   = errors.New("payment reference not found")
)
