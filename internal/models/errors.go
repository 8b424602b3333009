package models

import "errors"

var (
	ErrInvalidTicker = errors.New("invalid ticker")
	ErrInvalidPrice  = errors.New("invalid price")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidBar    = errors.New("invalid bar (high < low)")
	ErrInvalidVolume = errors.New("invalid volume")
	ErrUnknownRange  = errors.New("unknown range key")
)
