// Package visits handles requests to visit a department head. Staff see and
// answer every request; other users only see their own.
package visits

import (
	"context"

	"campus/internal/application/common"
	"campus/internal/application/common/lifecycle"
	"campus/internal/domain/visits"
	vo "campus/internal/domain/visits/valueobjects"
	"campus/internal/shared/db"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
	"campus/internal/shared/query"
)

const (
	EntityVisitRequest = "visit_request"

	PermissionDeniedMessage = "Permission denied"
)

type CreateRequest struct {
	// RequesterID lets staff file on someone else's behalf. It is ignored
	// for other callers.
	RequesterID  uint
	DepartmentID uint
	Reason       string
}

type Service struct {
	// Status backs both the respond action and the admin bulk status list.
	Status *lifecycle.ChangeStatusUseCase[*visits.VisitRequest]

	departments visits.DepartmentRepository
	requests    visits.VisitRequestRepository
	tx          db.Transactor
	logger      logger.Interface
}

func NewService(departments visits.DepartmentRepository, requests visits.VisitRequestRepository, tx db.Transactor, journal *lifecycle.Journal, log logger.Interface) *Service {
	log = log.Named("visits")
	return &Service{
		Status:      lifecycle.NewChangeStatusUseCase(VisitLifecycle(), requests, tx, journal, log),
		departments: departments,
		requests:    requests,
		tx:          tx,
		logger:      log,
	}
}

func VisitLifecycle() lifecycle.Spec[*visits.VisitRequest] {
	return lifecycle.Spec[*visits.VisitRequest]{
		EntityType: EntityVisitRequest,
		Valid:      vo.IsValidVisitStatus,
		Current:    func(v *visits.VisitRequest) string { return v.Status().String() },
		Apply: func(v *visits.VisitRequest, status, note string, actorID uint) error {
			return v.Respond(vo.VisitStatus(status), note, actorID)
		},
	}
}

func (s *Service) ListDepartments(ctx context.Context, page query.PageFilter) ([]*visits.Department, int64, error) {
	items, total, err := s.departments.List(ctx, page)
	if err != nil {
		return nil, 0, common.PersistenceError(err, "failed to list departments")
	}
	return items, total, nil
}

func (s *Service) GetDepartment(ctx context.Context, id uint) (*visits.Department, error) {
	d, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get department")
	}
	return d, nil
}

func (s *Service) CreateDepartment(ctx context.Context, name string) (*visits.Department, error) {
	d, err := visits.NewDepartment(name)
	if err != nil {
		return nil, common.DomainError(err)
	}
	if err := s.departments.Create(ctx, d); err != nil {
		return nil, common.PersistenceError(err, "failed to create department")
	}
	s.logger.Infow("visit department created", "id", d.ID(), "name", d.Name())
	return d, nil
}

func (s *Service) RenameDepartment(ctx context.Context, id uint, name string) (*visits.Department, error) {
	var dept *visits.Department
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		d, err := s.departments.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := d.Rename(name); err != nil {
			return common.DomainError(err)
		}
		if err := s.departments.Update(ctx, d); err != nil {
			return err
		}
		dept = d
		return nil
	})
	if err != nil {
		return nil, common.PersistenceError(err, "failed to update department")
	}
	return dept, nil
}

// DeleteDepartment fails while visit requests reference the department.
func (s *Service) DeleteDepartment(ctx context.Context, id uint) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		return common.PersistenceError(err, "failed to delete department")
	}
	return nil
}

// Create files a visit request. Staff filing for another user are recorded
// as the creating secretary.
func (s *Service) Create(ctx context.Context, caller common.Caller, in CreateRequest) (*visits.VisitRequest, error) {
	requesterID := caller.UserID
	var secretary *uint
	if caller.IsStaff() && in.RequesterID != 0 && in.RequesterID != caller.UserID {
		requesterID = in.RequesterID
		secretary = common.ActorRef(caller.UserID)
	}

	v, err := visits.NewVisitRequest(requesterID, in.DepartmentID, in.Reason, secretary)
	if err != nil {
		return nil, common.DomainError(err)
	}
	if err := s.checkDepartment(ctx, in.DepartmentID); err != nil {
		return nil, err
	}
	if err := s.requests.Create(ctx, v); err != nil {
		return nil, common.PersistenceError(err, "failed to create visit request")
	}

	s.logger.Infow("visit request created",
		"id", v.ID(),
		"requester_id", requesterID,
		"department_id", in.DepartmentID,
	)
	return v, nil
}

func (s *Service) checkDepartment(ctx context.Context, id uint) error {
	if _, err := s.departments.GetByID(ctx, id); err != nil {
		if errors.IsNotFoundError(err) {
			return errors.NewFieldValidationError("department_id", "department not found")
		}
		return common.PersistenceError(err, "failed to get department")
	}
	return nil
}

// List returns every request for staff and the caller's own otherwise.
func (s *Service) List(ctx context.Context, caller common.Caller, filter visits.RequestFilter) ([]*visits.VisitRequest, int64, error) {
	if !caller.IsStaff() {
		filter.RequesterID = caller.UserID
	}
	items, total, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, 0, common.PersistenceError(err, "failed to list visit requests")
	}
	return items, total, nil
}

// Get hides requests outside the caller's scope behind a not-found error.
func (s *Service) Get(ctx context.Context, caller common.Caller, id uint) (*visits.VisitRequest, error) {
	v, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get visit request")
	}
	if !v.VisibleTo(caller.UserID, caller.IsStaff()) {
		return nil, errors.NewNotFoundError("visit request not found")
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, caller common.Caller, id, departmentID uint, reason string) (*visits.VisitRequest, error) {
	v, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if departmentID != 0 && departmentID != v.DepartmentID() {
		if err := s.checkDepartment(ctx, departmentID); err != nil {
			return nil, err
		}
	}
	if err := v.Edit(departmentID, reason); err != nil {
		return nil, common.DomainError(err)
	}
	if err := s.requests.Update(ctx, v); err != nil {
		return nil, common.PersistenceError(err, "failed to update visit request")
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, caller common.Caller, id uint) error {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return err
	}
	if err := s.requests.Delete(ctx, id); err != nil {
		return common.PersistenceError(err, "failed to delete visit request")
	}
	s.logger.Infow("visit request deleted", "id", id, "user_id", caller.UserID)
	return nil
}

// Respond records a head's answer. Only staff may respond.
func (s *Service) Respond(ctx context.Context, caller common.Caller, id uint, status, note string) (*visits.VisitRequest, error) {
	if _, err := s.Get(ctx, caller, id); err != nil {
		return nil, err
	}
	if !caller.IsStaff() {
		return nil, errors.NewForbiddenError(PermissionDeniedMessage)
	}
	return s.Status.Execute(ctx, lifecycle.ChangeStatusCommand{
		ID:      id,
		Status:  status,
		Note:    note,
		ActorID: caller.UserID,
	})
}
