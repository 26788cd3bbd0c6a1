package notifier

import (
	"context"

	"github.com/google/uuid"
)

type ActionType string

const (
	ActionUnknown ActionType = "unknown"
	ActionCreate  ActionType = "create"
	ActionUpdate  ActionType = "update"
	ActionRename  ActionType = "rename"
	ActionDelete  ActionType = "delete"
)

type Action struct {
	Type    ActionType
	Path    string
	Name    string
	NewPath string
	NewName string
}

// Notification describes a single registry change. The ID correlates the
// notification with log lines and traces.
type Notification struct {
	ID     uuid.UUID
	Action Action
}

type Notifier interface {
	Notify(ctx context.Context, notification Notification) error
}

func CreateNotification(path, name string) Notification {
	return Notification{
		ID: uuid.New(),
		Action: Action{
			Type: ActionCreate,
			Path: path,
			Name: name,
		},
	}
}

func UpdateNotification(path, name string) Notification {
	return Notification{
		ID: uuid.New(),
		Action: Action{
			Type: ActionUpdate,
			Path: path,
			Name: name,
		},
	}
}

func RenameNotification(path, name, newPath, newName string) Notification {
	return Notification{
		ID: uuid.New(),
		Action: Action{
			Type:    ActionRename,
			Path:    path,
			Name:    name,
			NewPath: newPath,
			NewName: newName,
		},
	}
}

func DeleteNotification(path, name string) Notification {
	return Notification{
		ID: uuid.New(),
		Action: Action{
			Type: ActionDelete,
			Path: path,
			Name: name,
		},
	}
}
