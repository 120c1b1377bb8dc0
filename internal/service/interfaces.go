package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RosterServiceInterface defines the interface for the roster service
type RosterServiceInterface interface {
	GetCycle(date string) (*CycleResponse, error)
	GetDay(date string) (*DayResponse, error)
	Assign(ctx context.Context, date string, req *AssignRequest) (*DayResponse, error)
	Unassign(ctx context.Context, date, staffID string) (*DayResponse, error)
	Toggle(ctx context.Context, date string, req *AssignRequest) (*DayResponse, error)
	ClearDate(ctx context.Context, date string) (*DayResponse, error)
	SetNote(ctx context.Context, date string, req *SetNoteRequest) (*DayResponse, error)

	ListStaff() *StaffListResponse
	CreateStaff(ctx context.Context, req *CreateStaffRequest) (*StaffResponse, error)
	UpdateStaff(ctx context.Context, id string, req *UpdateStaffRequest) (*StaffResponse, error)
	DeleteStaff(ctx context.Context, id string) error

	GetStatistics(date string) (*StatisticsResponse, error)
	GetStatus() *StatusResponse

	GetLockState() *LockStateResponse
	Unlock(req *UnlockRequest) (*LockStateResponse, error)
	Lock() *LockStateResponse
}
