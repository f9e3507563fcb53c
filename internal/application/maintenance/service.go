// Package maintenance runs the fault reporting workflow: requests, the work
// orders scheduled for them and the completion reports that close them.
// Preventive schedules, sign-offs, the asset service log and the monthly
// metrics live here too.
package maintenance

import (
	"context"
	"time"

	"campus/internal/application/common"
	"campus/internal/application/common/crud"
	"campus/internal/application/common/lifecycle"
	"campus/internal/domain/maintenance"
	vo "campus/internal/domain/maintenance/valueobjects"
	"campus/internal/domain/shared"
	"campus/internal/shared/biztime"
	"campus/internal/shared/db"
	"campus/internal/shared/errors"
	"campus/internal/shared/logger"
)

const (
	EntityRequest   = "maintenance_request"
	EntityWorkOrder = "work_order"

	RequestPrefix   = "MR"
	WorkOrderPrefix = "WO"
)

// ReferenceGenerator issues human readable record numbers such as
// MR-20260114-3FA2C1.
type ReferenceGenerator interface {
	Next(prefix string) string
}

// RequestActions are the bulk actions of the request admin list.
var RequestActions = lifecycle.MarkActions(
	vo.RequestStatusSubmitted.String(),
	vo.RequestStatusAcknowledged.String(),
	vo.RequestStatusScheduled.String(),
	vo.RequestStatusCompleted.String(),
	vo.RequestStatusCancelled.String(),
)

type (
	TeamService       = crud.Service[*maintenance.MaintenanceTeam, maintenance.TeamDetails, maintenance.TeamFilter]
	TechnicianService = crud.Service[*maintenance.Technician, maintenance.TechnicianDetails, maintenance.TechnicianFilter]
	RequestService    = crud.Service[*maintenance.MaintenanceRequest, maintenance.RequestDetails, maintenance.RequestFilter]
	WorkOrderService  = crud.Service[*maintenance.WorkOrder, maintenance.WorkOrderDetails, maintenance.WorkOrderFilter]
	ScheduleService   = crud.Service[*maintenance.MaintenanceSchedule, maintenance.ScheduleDetails, maintenance.ScheduleFilter]
	SignatureService  = crud.Service[*maintenance.MaintenanceSignature, maintenance.SignatureDetails, maintenance.SignatureFilter]
	HistoryService    = crud.Service[*maintenance.MaintenanceHistory, maintenance.HistoryDetails, maintenance.HistoryFilter]
	MetricsService    = crud.Service[*maintenance.MaintenanceMetrics, maintenance.MetricsDetails, maintenance.MetricsFilter]
)

type Repositories struct {
	Teams       maintenance.MaintenanceTeamRepository
	Technicians maintenance.TechnicianRepository
	Requests    maintenance.MaintenanceRequestRepository
	WorkOrders  maintenance.WorkOrderRepository
	Completions maintenance.CompletionRepository
	Schedules   maintenance.MaintenanceScheduleRepository
	Signatures  maintenance.SignatureRepository
	History     maintenance.HistoryRepository
	Metrics     maintenance.MetricsRepository
}

type Service struct {
	Teams           *TeamService
	Technicians     *TechnicianService
	Requests        *RequestService
	WorkOrders      *WorkOrderService
	Schedules       *ScheduleService
	Signatures      *SignatureService
	History         *HistoryService
	Metrics         *MetricsService
	RequestStatus   *lifecycle.ChangeStatusUseCase[*maintenance.MaintenanceRequest]
	WorkOrderStatus *lifecycle.ChangeStatusUseCase[*maintenance.WorkOrder]

	repos   Repositories
	refs    ReferenceGenerator
	tx      db.Transactor
	journal *lifecycle.Journal
	logger  logger.Interface
}

func NewService(repos Repositories, refs ReferenceGenerator, tx db.Transactor, journal *lifecycle.Journal, log logger.Interface) *Service {
	log = log.Named("maintenance")
	s := &Service{repos: repos, refs: refs, tx: tx, journal: journal, logger: log}

	s.Teams = crud.NewService[*maintenance.MaintenanceTeam, maintenance.TeamDetails, maintenance.TeamFilter](
		"maintenance team", repos.Teams,
		func(d maintenance.TeamDetails, _ uint) (*maintenance.MaintenanceTeam, error) {
			return maintenance.NewMaintenanceTeam(d)
		},
		tx, log)
	s.Technicians = crud.NewService[*maintenance.Technician, maintenance.TechnicianDetails, maintenance.TechnicianFilter](
		"technician", repos.Technicians,
		func(d maintenance.TechnicianDetails, _ uint) (*maintenance.Technician, error) {
			return maintenance.NewTechnician(d)
		},
		tx, log)
	s.Requests = crud.NewService[*maintenance.MaintenanceRequest, maintenance.RequestDetails, maintenance.RequestFilter](
		EntityRequest, repos.Requests,
		func(d maintenance.RequestDetails, actorID uint) (*maintenance.MaintenanceRequest, error) {
			return maintenance.NewMaintenanceRequest(refs.Next(RequestPrefix), common.ActorRef(actorID), d)
		},
		tx, log)
	s.WorkOrders = crud.NewService[*maintenance.WorkOrder, maintenance.WorkOrderDetails, maintenance.WorkOrderFilter](
		EntityWorkOrder, repos.WorkOrders,
		func(d maintenance.WorkOrderDetails, _ uint) (*maintenance.WorkOrder, error) {
			return maintenance.NewWorkOrder(refs.Next(WorkOrderPrefix), d)
		},
		tx, log).WithPrepare(s.checkWorkOrderRequest)
	s.Schedules = crud.NewService[*maintenance.MaintenanceSchedule, maintenance.ScheduleDetails, maintenance.ScheduleFilter](
		"maintenance schedule", repos.Schedules,
		func(d maintenance.ScheduleDetails, _ uint) (*maintenance.MaintenanceSchedule, error) {
			return maintenance.NewMaintenanceSchedule(d)
		},
		tx, log)
	s.Signatures = crud.NewService[*maintenance.MaintenanceSignature, maintenance.SignatureDetails, maintenance.SignatureFilter](
		"maintenance signature", repos.Signatures,
		func(d maintenance.SignatureDetails, actorID uint) (*maintenance.MaintenanceSignature, error) {
			if d.SignerID == nil {
				d.SignerID = common.ActorRef(actorID)
			}
			return maintenance.NewMaintenanceSignature(d, biztime.NowUTC())
		},
		tx, log).WithPrepare(s.checkSignature)
	s.History = crud.NewService[*maintenance.MaintenanceHistory, maintenance.HistoryDetails, maintenance.HistoryFilter](
		"maintenance history", repos.History,
		func(d maintenance.HistoryDetails, _ uint) (*maintenance.MaintenanceHistory, error) {
			return maintenance.NewMaintenanceHistory(d)
		},
		tx, log)
	s.Metrics = crud.NewService[*maintenance.MaintenanceMetrics, maintenance.MetricsDetails, maintenance.MetricsFilter](
		"maintenance metrics", repos.Metrics,
		func(d maintenance.MetricsDetails, _ uint) (*maintenance.MaintenanceMetrics, error) {
			return maintenance.NewMaintenanceMetrics(d)
		},
		tx, log).WithPrepare(s.checkMetricsMonth)

	s.RequestStatus = lifecycle.NewChangeStatusUseCase(RequestLifecycle(), repos.Requests, tx, journal, log)
	s.WorkOrderStatus = lifecycle.NewChangeStatusUseCase(WorkOrderLifecycle(), repos.WorkOrders, tx, journal, log)
	return s
}

func RequestLifecycle() lifecycle.Spec[*maintenance.MaintenanceRequest] {
	return lifecycle.Spec[*maintenance.MaintenanceRequest]{
		EntityType: EntityRequest,
		Valid:      vo.IsValidRequestStatus,
		Current:    func(r *maintenance.MaintenanceRequest) string { return r.Status().String() },
		Apply: func(r *maintenance.MaintenanceRequest, status, _ string, _ uint) error {
			return r.ChangeStatus(vo.RequestStatus(status))
		},
	}
}

func WorkOrderLifecycle() lifecycle.Spec[*maintenance.WorkOrder] {
	return lifecycle.Spec[*maintenance.WorkOrder]{
		EntityType: EntityWorkOrder,
		Valid:      vo.IsValidWorkOrderStatus,
		Current:    func(w *maintenance.WorkOrder) string { return w.Status().String() },
		Apply: func(w *maintenance.WorkOrder, status, _ string, _ uint) error {
			return w.ChangeStatus(vo.WorkOrderStatus(status))
		},
	}
}

// checkWorkOrderRequest enforces one work order per existing request. The
// request link of a saved work order never changes, so only creates are
// checked.
func (s *Service) checkWorkOrderRequest(ctx context.Context, id uint, d maintenance.WorkOrderDetails) (maintenance.WorkOrderDetails, error) {
	if id != 0 || d.MaintenanceRequestID == 0 {
		return d, nil
	}
	if _, err := s.repos.Requests.GetByID(ctx, d.MaintenanceRequestID); err != nil {
		if errors.IsNotFoundError(err) {
			return d, shared.NewFieldError("maintenance_request_id", "maintenance request not found")
		}
		return d, err
	}
	_, err := s.repos.WorkOrders.GetByRequestID(ctx, d.MaintenanceRequestID)
	switch {
	case err == nil:
		return d, shared.NewFieldError("maintenance_request_id", "a work order already exists for this maintenance request")
	case errors.IsNotFoundError(err):
		return d, nil
	default:
		return d, err
	}
}

// checkSignature allows one signature of each type per existing work order.
// Type and work order are fixed after signing, so only creates are checked.
func (s *Service) checkSignature(ctx context.Context, id uint, d maintenance.SignatureDetails) (maintenance.SignatureDetails, error) {
	if id != 0 || d.WorkOrderID == 0 {
		return d, nil
	}
	if _, err := s.repos.WorkOrders.GetByID(ctx, d.WorkOrderID); err != nil {
		if errors.IsNotFoundError(err) {
			return d, shared.NewFieldError("work_order_id", "work order not found")
		}
		return d, err
	}
	exists, err := s.repos.Signatures.ExistsForWorkOrder(ctx, d.WorkOrderID, d.SignatureType.String())
	if err != nil {
		return d, err
	}
	if exists {
		return d, shared.NewFieldError("signature_type", "this work order already has a %s signature", d.SignatureType)
	}
	return d, nil
}

// checkMetricsMonth keeps one metrics row per calendar month.
func (s *Service) checkMetricsMonth(ctx context.Context, id uint, d maintenance.MetricsDetails) (maintenance.MetricsDetails, error) {
	if d.Month.IsZero() {
		return d, nil
	}
	existing, err := s.repos.Metrics.GetByMonth(ctx, maintenance.MonthStart(d.Month))
	switch {
	case err == nil && existing.ID() != id:
		return d, shared.NewFieldError("month", "metrics for this month already exist")
	case err == nil, errors.IsNotFoundError(err):
		return d, nil
	default:
		return d, err
	}
}

// MarkSchedulePerformed logs the service day and rolls the schedule to its
// next due date.
func (s *Service) MarkSchedulePerformed(ctx context.Context, id uint, day time.Time) (*maintenance.MaintenanceSchedule, error) {
	var schedule *maintenance.MaintenanceSchedule
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		sc, err := s.repos.Schedules.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := sc.MarkPerformed(day); err != nil {
			return common.DomainError(err)
		}
		if err := s.repos.Schedules.Update(ctx, sc); err != nil {
			return err
		}
		schedule = sc
		return nil
	})
	if err != nil {
		s.logger.Warnw("failed to mark schedule performed", "schedule_id", id, "error", err)
		return nil, common.PersistenceError(err, "failed to mark maintenance schedule performed")
	}
	s.logger.Infow("maintenance schedule performed",
		"schedule_id", id,
		"next_due_date", biztime.FormatDate(schedule.Details().NextDueDate),
	)
	return schedule, nil
}

// BulkRequestAction applies one of RequestActions to the selected requests.
func (s *Service) BulkRequestAction(ctx context.Context, ids []uint, action string, actorID uint) (*lifecycle.BulkResult, error) {
	status, err := RequestActions.Resolve(action)
	if err != nil {
		return nil, err
	}
	return s.RequestStatus.ExecuteBulk(ctx, lifecycle.BulkCommand{IDs: ids, Status: status, ActorID: actorID})
}

func (s *Service) AssignTechnician(ctx context.Context, requestID, technicianID uint) (*maintenance.MaintenanceRequest, error) {
	var request *maintenance.MaintenanceRequest
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		r, err := s.repos.Requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if _, err := s.repos.Technicians.GetByID(ctx, technicianID); err != nil {
			if errors.IsNotFoundError(err) {
				return errors.NewFieldValidationError("technician_id", "technician not found")
			}
			return err
		}
		if err := r.Assign(technicianID); err != nil {
			return common.DomainError(err)
		}
		if err := s.repos.Requests.Update(ctx, r); err != nil {
			return err
		}
		request = r
		return nil
	})
	if err != nil {
		s.logger.Warnw("failed to assign technician", "request_id", requestID, "technician_id", technicianID, "error", err)
		return nil, common.PersistenceError(err, "failed to assign technician")
	}

	s.logger.Infow("technician assigned",
		"request_id", request.RequestID(),
		"technician_id", technicianID,
	)
	return request, nil
}

// RecordCompletion files the completion report and closes its work order.
// The work order status change is journaled like any other.
func (s *Service) RecordCompletion(ctx context.Context, details maintenance.CompletionDetails, actorID uint) (*maintenance.WorkOrderCompletion, error) {
	var completion *maintenance.WorkOrderCompletion
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		wo, err := s.repos.WorkOrders.GetByID(ctx, details.WorkOrderID)
		if err != nil {
			return err
		}
		if _, err := s.repos.Completions.GetByWorkOrderID(ctx, wo.ID()); err == nil {
			return errors.NewFieldValidationError("work_order_id", "this work order already has a completion report")
		} else if !errors.IsNotFoundError(err) {
			return err
		}

		c, err := maintenance.NewWorkOrderCompletion(details, common.ActorRef(actorID))
		if err != nil {
			return common.DomainError(err)
		}
		if err := s.repos.Completions.Create(ctx, c); err != nil {
			return err
		}

		if err := s.logAssetHistory(ctx, wo, c); err != nil {
			return err
		}

		old := wo.Status().String()
		wo.Complete()
		if err := s.repos.WorkOrders.Update(ctx, wo); err != nil {
			return err
		}
		if err := s.journal.Log(ctx, EntityWorkOrder, wo.ID(), old, wo.Status().String(), actorID, "completion recorded"); err != nil {
			return err
		}
		completion = c
		return nil
	})
	if err != nil {
		s.logger.Warnw("failed to record completion", "work_order_id", details.WorkOrderID, "error", err)
		return nil, common.PersistenceError(err, "failed to record work order completion")
	}

	s.journal.Committed(EntityWorkOrder, vo.WorkOrderCompleted.String(), 1)
	s.logger.Infow("work order completed", "work_order_id", details.WorkOrderID, "actor_id", actorID)
	return completion, nil
}

// logAssetHistory adds the service log entry for a completed work order
// whose request concerns an asset.
func (s *Service) logAssetHistory(ctx context.Context, wo *maintenance.WorkOrder, c *maintenance.WorkOrderCompletion) error {
	request, err := s.repos.Requests.GetByID(ctx, wo.Details().MaintenanceRequestID)
	if err != nil {
		return err
	}
	assetID := request.Details().AssetID
	if assetID == nil {
		return nil
	}
	h, err := maintenance.NewMaintenanceHistory(maintenance.HistoryFromCompletion(*assetID, wo, c, biztime.Today()))
	if err != nil {
		return common.DomainError(err)
	}
	return s.repos.History.Create(ctx, h)
}

func (s *Service) GetCompletion(ctx context.Context, workOrderID uint) (*maintenance.WorkOrderCompletion, error) {
	c, err := s.repos.Completions.GetByWorkOrderID(ctx, workOrderID)
	if err != nil {
		return nil, common.PersistenceError(err, "failed to get work order completion")
	}
	return c, nil
}

func (s *Service) UpdateCompletion(ctx context.Context, workOrderID uint, details maintenance.CompletionDetails) (*maintenance.WorkOrderCompletion, error) {
	var completion *maintenance.WorkOrderCompletion
	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		c, err := s.repos.Completions.GetByWorkOrderID(ctx, workOrderID)
		if err != nil {
			return err
		}
		if err := c.Update(details); err != nil {
			return common.DomainError(err)
		}
		if err := s.repos.Completions.Update(ctx, c); err != nil {
			return err
		}
		completion = c
		return nil
	})
	if err != nil {
		return nil, common.PersistenceError(err, "failed to update work order completion")
	}
	return completion, nil
}
