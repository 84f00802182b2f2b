package usecase

import "encoding/json"

type SendInput struct {
	Host    string
	Message string
}

type SendResult struct {
	Port int
}

type IPInfoResult struct {
	Body json.RawMessage
}
