package settlement

import (
	"context"
	"errors"
	"strings"
	"time"

	"reefer-backoffice/internal/domain/apperr"
	"reefer-backoffice/internal/domain/audit"
	domain "reefer-backoffice/internal/domain/settlement"
	domainTrip "reefer-backoffice/internal/domain/trip"
	"reefer-backoffice/internal/domain/uow"
	auditUC "reefer-backoffice/internal/usecase/audit"
	"reefer-backoffice/pkg/id"
	"reefer-backoffice/pkg/logger"
	"reefer-backoffice/pkg/metrics"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	trips       domainTrip.Repository
	settlements domain.Repository
	uow         uow.UnitOfWork
	recorder    *auditUC.Recorder
	metrics     *metrics.Metrics
	log         logger.Logger
}

func NewUsecase(
	trips domainTrip.Repository,
	settlements domain.Repository,
	tx uow.UnitOfWork,
	rec *auditUC.Recorder,
	m *metrics.Metrics,
	log logger.Logger,
) *Usecase {
	if log == nil {
		log = logger.NewNop()
	}
	return &Usecase{trips: trips, settlements: settlements, uow: tx, recorder: rec, metrics: m, log: log}
}

func tags(op string) map[string]string { return map[string]string{"operation": op} }

// Create opens a DRAFT settlement with no trips and no lines.
func (u *Usecase) Create(ctx context.Context, in CreateInput, rc audit.RequestContext) (s *domain.Settlement, err error) {
	defer func() { u.metrics.SettlementOp("create", err) }()

	if in.OperatorID == 0 {
		return nil, domain.ErrMissingField.WithField("operator_id")
	}
	if in.PeriodFrom.IsZero() || in.PeriodTo.IsZero() {
		return nil, domain.ErrMissingField.WithField("period")
	}
	if in.PeriodFrom.After(in.PeriodTo) {
		return nil, domain.ErrInvalidPeriod
	}

	s = &domain.Settlement{
		SettlementID: id.NewID32(),
		OperatorID:   in.OperatorID,
		UnitLabel:    strings.TrimSpace(in.UnitLabel),
		PeriodFrom:   dateOnly(in.PeriodFrom),
		PeriodTo:     dateOnly(in.PeriodTo),
		Status:       domain.StatusDraft,
		Notes:        strings.TrimSpace(in.Notes),
	}
	if in.DepositDate != nil {
		d := dateOnly(*in.DepositDate)
		s.DepositDate = &d
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Settlements.Create(ctx, s); err != nil {
			return err
		}
		_, err := u.recorder.Created(ctx, r.Audit, u.recorder.Capture(s), rc, tags("create_settlement"))
		return err
	})
	if err != nil {
		return nil, apperr.Ensure(err)
	}
	u.log.Info("settlement created", "settlement_id", s.SettlementID, "operator_id", s.OperatorID)
	return s, nil
}

// AddLine appends a line to a DRAFT settlement.
func (u *Usecase) AddLine(ctx context.Context, in AddLineInput, rc audit.RequestContext) (line *domain.Line, err error) {
	defer func() { u.metrics.SettlementOp("add_line", err) }()

	if in.Amount.IsNegative() {
		return nil, domain.ErrNegativeAmount.WithField("amount")
	}
	category := domain.Category(strings.TrimSpace(in.Category))
	if !category.Valid() {
		return nil, domain.ErrInvalidCategory.WithField("category")
	}
	paymentType := domain.PaymentType(strings.TrimSpace(in.PaymentType))
	if !paymentType.Valid() {
		return nil, domain.ErrInvalidPaymentType.WithField("payment_type")
	}
	concept := strings.TrimSpace(in.Concept)
	if concept == "" {
		return nil, domain.ErrMissingField.WithField("concept")
	}

	err = u.uow.WithinSettlementTx(ctx, in.SettlementID, func(r uow.Repos, s *domain.Settlement) error {
		if !s.Editable() {
			return domain.ErrImmutable
		}
		l := &domain.Line{
			SettlementID: s.ID,
			Category:     category,
			Concept:      concept,
			PaymentType:  paymentType,
			Amount:       in.Amount.Round(2),
			Notes:        strings.TrimSpace(in.Notes),
		}
		if err := r.Settlements.CreateLine(ctx, l); err != nil {
			return err
		}
		if _, err := u.recorder.Created(ctx, r.Audit, u.recorder.Capture(l), rc, tags("add_line")); err != nil {
			return err
		}
		line = l
		return nil
	})
	if err != nil {
		return nil, mapErr(err, domain.ErrNotFound)
	}
	return line, nil
}

// RemoveLine soft-deletes a line of a DRAFT settlement.
func (u *Usecase) RemoveLine(ctx context.Context, settlementID string, lineID uint64, rc audit.RequestContext) (err error) {
	defer func() { u.metrics.SettlementOp("remove_line", err) }()

	err = u.uow.WithinSettlementTx(ctx, settlementID, func(r uow.Repos, s *domain.Settlement) error {
		if !s.Editable() {
			return domain.ErrImmutable
		}
		l, err := r.Settlements.GetLine(ctx, s.ID, lineID)
		if err != nil {
			return mapErr(err, domain.ErrLineNotFound)
		}
		before := u.recorder.Capture(l)
		if err := r.Settlements.DeleteLine(ctx, l); err != nil {
			return err
		}
		_, err = u.recorder.Deleted(ctx, r.Audit, before, rc, tags("remove_line"))
		return err
	})
	return mapErr(err, domain.ErrNotFound)
}

// MarkReady closes a DRAFT settlement whose LOAD trip (and DROP, if any) is still active.
// Already READY is a no-op.
func (u *Usecase) MarkReady(ctx context.Context, settlementID string, rc audit.RequestContext) (dto *StatusDTO, err error) {
	defer func() { u.metrics.SettlementOp("mark_ready", err) }()

	err = u.uow.WithinSettlementTx(ctx, settlementID, func(r uow.Repos, s *domain.Settlement) error {
		dto = &StatusDTO{SettlementID: s.SettlementID, Status: string(s.Status)}
		switch s.Status {
		case domain.StatusReady:
			return nil
		case domain.StatusDraft:
		default:
			return domain.ErrImmutable
		}

		members, err := r.Settlements.ListMemberships(ctx, s.ID)
		if err != nil {
			return err
		}
		roles := byRole(members)
		load, ok := roles[domain.RoleLoad]
		if !ok {
			return domain.ErrNoLoadTrip
		}
		// member trips must still be active
		if _, err := r.Trips.GetByID(ctx, load.TripID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoLoadTrip
			}
			return err
		}
		if drop, ok := roles[domain.RoleDrop]; ok {
			if _, err := r.Trips.GetByID(ctx, drop.TripID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrDropNotEligible
				}
				return err
			}
		}

		before := u.recorder.Capture(s)
		s.Status = domain.StatusReady
		if err := r.Settlements.Save(ctx, s); err != nil {
			return err
		}
		if _, err := u.recorder.Updated(ctx, r.Audit, before, u.recorder.Capture(s), rc, tags("mark_ready")); err != nil {
			return err
		}
		dto.Status = string(s.Status)
		return nil
	})
	if err != nil {
		return nil, mapErr(err, domain.ErrNotFound)
	}
	return dto, nil
}

// Total is the exact sum of the non-deleted line amounts.
func (u *Usecase) Total(ctx context.Context, settlementID string) (*TotalDTO, error) {
	s, err := u.settlements.GetBySettlementID(ctx, settlementID)
	if err != nil {
		return nil, mapErr(err, domain.ErrNotFound)
	}
	lines, err := u.settlements.ListLines(ctx, s.ID)
	if err != nil {
		return nil, apperr.Ensure(err)
	}
	return &TotalDTO{SettlementID: s.SettlementID, Total: domain.Sum(lines)}, nil
}

// Get returns the settlement with its trips, lines, per-category subtotals and total.
func (u *Usecase) Get(ctx context.Context, settlementID string) (*DetailDTO, error) {
	s, err := u.settlements.GetBySettlementID(ctx, settlementID)
	if err != nil {
		return nil, mapErr(err, domain.ErrNotFound)
	}
	members, err := u.settlements.ListMemberships(ctx, s.ID)
	if err != nil {
		return nil, apperr.Ensure(err)
	}
	lines, err := u.settlements.ListLines(ctx, s.ID)
	if err != nil {
		return nil, apperr.Ensure(err)
	}

	out := &DetailDTO{
		Settlement: s,
		Lines:      lines,
		Subtotals:  subtotals(lines),
		Total:      domain.Sum(lines),
	}
	roles := byRole(members)
	if m, ok := roles[domain.RoleLoad]; ok {
		out.LoadTripID = &m.TripID
	}
	if m, ok := roles[domain.RoleDrop]; ok {
		out.DropTripID = &m.TripID
	}
	if out.Lines == nil {
		out.Lines = []domain.Line{}
	}
	return out, nil
}

func subtotals(lines []domain.Line) map[domain.Category]decimal.Decimal {
	out := map[domain.Category]decimal.Decimal{}
	for _, l := range lines {
		out[l.Category] = out[l.Category].Add(l.Amount)
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func byRole(members []domain.Membership) map[domain.Role]domain.Membership {
	out := make(map[domain.Role]domain.Membership, len(members))
	for _, m := range members {
		out[m.Role] = m
	}
	return out
}

// mapErr turns a missing row into notFound and anything unexpected into an internal error.
func mapErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return apperr.Ensure(err)
}
