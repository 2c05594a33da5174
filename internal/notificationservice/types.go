package notificationservice

import (
	"github.com/sushihentaime/inkpost/internal/common"
	"github.com/sushihentaime/inkpost/internal/memdb"
)

type Logger interface {
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

type NotificationService struct {
	db     *memdb.DB
	mb     common.MessageProducer
	logger Logger
}
