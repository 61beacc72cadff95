package main

type uiState struct {
	noticeMsg  string
	noticeType string
	noticeSeq  int
	overlay    bool
}
