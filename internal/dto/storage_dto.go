package dto

import "encoding/json"

type SetValueRequest struct {
	Key   string          `json:"key" validate:"required"`
	Value json.RawMessage `json:"value" validate:"required"`
}

type GetValueResponse struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

type ReadPageRequest struct {
	Url string `json:"url" validate:"required,url"`
}

type ReadPageResponse struct {
	Content string `json:"content"`
}

type SendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Html    string `json:"html" validate:"required"`
}
