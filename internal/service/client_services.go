package service

import (
	"github.com/MKhiriev/go-ai-feedback/internal/adapter"
	"github.com/MKhiriev/go-ai-feedback/internal/logger"
	"github.com/MKhiriev/go-ai-feedback/internal/store"
)

type ClientServices struct {
	AuthService ClientAuthService
	ChatService ClientChatService
	Heartbeat   ClientHeartbeat
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, player AudioPlayer, log *logger.Logger) (*ClientServices, error) {
	if localStore == nil || localStore.LocalSession == nil {
		return nil, store.ErrDBIsNil
	}

	return &ClientServices{
		AuthService: NewClientAuthService(localStore.LocalSession, serverAdapter, log),
		ChatService: NewClientChatService(serverAdapter, player, log),
		Heartbeat:   NewClientHeartbeat(serverAdapter, log),
	}, nil
}
