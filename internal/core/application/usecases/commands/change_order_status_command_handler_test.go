package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/model/session"
	"workorders/internal/core/domain/services"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ChangeOrderStatusCommandHandlerTestSuite struct {
	suite.Suite
	ctx     context.Context
	repo    *MockOrderRepository
	events  *MockStatusEventRepository
	uow     *MockOrderUoW
	factory *MockOrderUoWFactory
	handler commands.ChangeOrderStatusCommandHandler
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = new(MockOrderRepository)
	s.events = new(MockStatusEventRepository)
	s.uow = new(MockOrderUoW)
	s.factory = new(MockOrderUoWFactory)
	s.handler = commands.NewChangeOrderStatusCommandHandler(s.factory, services.NewOrderWorkflow(clock), 2)

	s.factory.On("Create").Return(s.uow)
	s.uow.On("Begin", s.ctx).Return(nil)
	s.uow.On("Rollback", s.ctx).Return(nil)
	s.uow.On("OrderRepository").Return(s.repo)
	s.uow.On("StatusEventRepository").Return(s.events)
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) command(
	id kernel.UUID,
	actor session.Session,
	target order.Status,
	assignee *kernel.UUID,
) commands.ChangeOrderStatusCommand {
	cmd, err := commands.NewChangeOrderStatusCommand(id, actor, target, assignee)
	s.Require().NoError(err)
	return cmd
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestAdminAssignsWithConsultant() {
	current := orderIn(s.T(), order.Pending)
	admin := actor(s.T(), session.Admin)
	consultant := kernel.NewUUID()

	s.repo.On("Get", s.ctx, current.ID()).Return(current, nil).Once()
	s.repo.On("Update", s.ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Status() == order.Assigned && o.IsAssignedTo(consultant) && o.UpdatedAt().Equal(fixedNow)
	}), order.Pending).Return(nil).Once()
	s.events.On("Add", s.ctx, mock.MatchedBy(func(e order.StatusChanged) bool {
		return e.Previous == order.Pending && e.Current == order.Assigned && e.ActorID.IsEqual(admin.ActorID())
	})).Return(nil).Once()
	s.uow.On("Commit", s.ctx).Return(nil).Once()

	result, err := s.handler.Handle(s.ctx, s.command(current.ID(), admin, order.Assigned, &consultant))

	s.Require().NoError(err)
	s.Equal(order.Assigned, result.Order.Status())
	s.Equal("Order status updated to assigned", result.Message())
	s.Equal(order.Pending, current.Status())
	s.repo.AssertExpectations(s.T())
	s.events.AssertExpectations(s.T())
	s.uow.AssertExpectations(s.T())
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestConsultantAcceptClaimsUnassignedOrder() {
	current := orderIn(s.T(), order.Pending)
	consultant := actor(s.T(), session.Consultant)

	s.repo.On("Get", s.ctx, current.ID()).Return(current, nil).Once()
	s.repo.On("Update", s.ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Status() == order.InProgress && o.IsAssignedTo(consultant.ActorID())
	}), order.Pending).Return(nil).Once()
	s.events.On("Add", s.ctx, mock.AnythingOfType("order.StatusChanged")).Return(nil).Once()
	s.uow.On("Commit", s.ctx).Return(nil).Once()

	result, err := s.handler.Handle(s.ctx, s.command(current.ID(), consultant, order.InProgress, nil))

	s.Require().NoError(err)
	s.Equal("Order status updated to in progress", result.Message())
	s.True(result.Order.IsAssignedTo(consultant.ActorID()))
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestAssignedConsultantStartsWork() {
	consultant := actor(s.T(), session.Consultant)
	assigned := orderAssignedTo(s.T(), order.Assigned, consultant.ActorID())

	s.repo.On("Get", s.ctx, assigned.ID()).Return(assigned, nil).Once()
	s.repo.On("Update", s.ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Status() == order.InProgress && o.IsAssignedTo(consultant.ActorID())
	}), order.Assigned).Return(nil).Once()
	s.events.On("Add", s.ctx, mock.AnythingOfType("order.StatusChanged")).Return(nil).Once()
	s.uow.On("Commit", s.ctx).Return(nil).Once()

	_, err := s.handler.Handle(s.ctx, s.command(assigned.ID(), consultant, order.InProgress, nil))

	s.Require().NoError(err)
	s.repo.AssertExpectations(s.T())
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestOrderOfAnotherConsultantIsHidden() {
	owner := kernel.NewUUID()
	for _, status := range []order.Status{order.Assigned, order.InProgress} {
		s.Run(status.String(), func() {
			s.SetupTest()
			current := orderAssignedTo(s.T(), status, owner)
			s.repo.On("Get", s.ctx, current.ID()).Return(current, nil).Once()

			_, err := s.handler.Handle(s.ctx, s.command(current.ID(), actor(s.T(), session.Consultant), order.Review, nil))

			s.Require().ErrorIs(err, errs.ErrObjectNotFound)
			s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
			s.events.AssertNotCalled(s.T(), "Add", mock.Anything, mock.Anything)
			s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
			s.factory.AssertNumberOfCalls(s.T(), "Create", 1)
		})
	}
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestUnassignedOrderPastPendingIsHiddenFromConsultant() {
	current := orderIn(s.T(), order.Assigned)
	s.repo.On("Get", s.ctx, current.ID()).Return(current, nil).Once()

	_, err := s.handler.Handle(s.ctx, s.command(current.ID(), actor(s.T(), session.Consultant), order.InProgress, nil))

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestIllegalTransitionIsNotPersisted() {
	consultant := actor(s.T(), session.Consultant)
	current := orderAssignedTo(s.T(), order.Review, consultant.ActorID())
	s.repo.On("Get", s.ctx, current.ID()).Return(current, nil).Once()

	_, err := s.handler.Handle(s.ctx, s.command(current.ID(), consultant, order.Completed, nil))

	var illegal *services.IllegalTransitionError
	s.Require().ErrorAs(err, &illegal)
	s.Equal(order.Review, illegal.From)
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
	s.factory.AssertNumberOfCalls(s.T(), "Create", 1)
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestNoOpIsReported() {
	consultant := actor(s.T(), session.Consultant)
	current := orderAssignedTo(s.T(), order.InProgress, consultant.ActorID())
	s.repo.On("Get", s.ctx, current.ID()).Return(current, nil).Once()

	_, err := s.handler.Handle(s.ctx, s.command(current.ID(), consultant, order.InProgress, nil))

	s.Require().ErrorIs(err, services.ErrNoOp)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestAssigneeOnOtherTransitionIsRejected() {
	current := orderIn(s.T(), order.Pending)
	assignee := kernel.NewUUID()
	s.repo.On("Get", s.ctx, current.ID()).Return(current, nil).Once()

	_, err := s.handler.Handle(s.ctx, s.command(current.ID(), actor(s.T(), session.Admin), order.Cancelled, &assignee))

	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	s.Contains(err.Error(), commands.ErrAssigneeNotAllowed.Error())
	s.repo.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestOrderNotFound() {
	id := kernel.NewUUID()
	s.repo.On("Get", s.ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	_, err := s.handler.Handle(s.ctx, s.command(id, actor(s.T(), session.Admin), order.Assigned, nil))

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.factory.AssertNumberOfCalls(s.T(), "Create", 1)
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestConflictIsRetriedFromFreshRead() {
	stale := orderIn(s.T(), order.Pending)
	consultant := actor(s.T(), session.Consultant)
	fresh, err := stale.WithStatus(order.Assigned, createdAt.Add(time.Minute))
	s.Require().NoError(err)
	s.Require().NoError(fresh.AssignTo(consultant.ActorID()))

	s.repo.On("Get", s.ctx, stale.ID()).Return(stale, nil).Once()
	s.repo.On("Update", s.ctx, mock.AnythingOfType("*order.Order"), order.Pending).
		Return(errs.NewConflictError("order", stale.ID(), order.Pending)).Once()
	s.repo.On("Get", s.ctx, stale.ID()).Return(fresh, nil).Once()
	s.repo.On("Update", s.ctx, mock.AnythingOfType("*order.Order"), order.Assigned).Return(nil).Once()
	s.events.On("Add", s.ctx, mock.MatchedBy(func(e order.StatusChanged) bool {
		return e.Previous == order.Assigned && e.Current == order.InProgress
	})).Return(nil).Once()
	s.uow.On("Commit", s.ctx).Return(nil).Once()

	result, err := s.handler.Handle(s.ctx, s.command(stale.ID(), consultant, order.InProgress, nil))

	s.Require().NoError(err)
	s.Equal(order.Assigned, result.Event.Previous)
	s.True(result.Order.IsAssignedTo(consultant.ActorID()))
	s.repo.AssertExpectations(s.T())
	s.events.AssertExpectations(s.T())
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestConflictRetryHidesOrderClaimedByAnotherConsultant() {
	stale := orderIn(s.T(), order.Pending)
	fresh, err := stale.WithStatus(order.Assigned, createdAt.Add(time.Minute))
	s.Require().NoError(err)
	s.Require().NoError(fresh.AssignTo(kernel.NewUUID()))

	s.repo.On("Get", s.ctx, stale.ID()).Return(stale, nil).Once()
	s.repo.On("Update", s.ctx, mock.AnythingOfType("*order.Order"), order.Pending).
		Return(errs.NewConflictError("order", stale.ID(), order.Pending)).Once()
	s.repo.On("Get", s.ctx, stale.ID()).Return(fresh, nil).Once()

	_, err = s.handler.Handle(s.ctx, s.command(stale.ID(), actor(s.T(), session.Consultant), order.InProgress, nil))

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.factory.AssertNumberOfCalls(s.T(), "Create", 2)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestConflictThenSuccess() {
	stale := orderIn(s.T(), order.Pending)
	admin := actor(s.T(), session.Admin)

	s.repo.On("Get", s.ctx, stale.ID()).Return(stale, nil).Twice()
	s.repo.On("Update", s.ctx, mock.AnythingOfType("*order.Order"), order.Pending).
		Return(errs.NewConflictError("order", stale.ID(), order.Pending)).Once()
	s.repo.On("Update", s.ctx, mock.AnythingOfType("*order.Order"), order.Pending).Return(nil).Once()
	s.events.On("Add", s.ctx, mock.AnythingOfType("order.StatusChanged")).Return(nil).Once()
	s.uow.On("Commit", s.ctx).Return(nil).Once()

	result, err := s.handler.Handle(s.ctx, s.command(stale.ID(), admin, order.Cancelled, nil))

	s.Require().NoError(err)
	s.Equal(order.Cancelled, result.Order.Status())
	s.factory.AssertNumberOfCalls(s.T(), "Create", 2)
	s.events.AssertNumberOfCalls(s.T(), "Add", 1)
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestConflictAfterRetryBecomesNoOp() {
	stale := orderIn(s.T(), order.Pending)
	fresh, err := stale.WithStatus(order.Cancelled, createdAt.Add(time.Minute))
	s.Require().NoError(err)

	s.repo.On("Get", s.ctx, stale.ID()).Return(stale, nil).Once()
	s.repo.On("Update", s.ctx, mock.AnythingOfType("*order.Order"), order.Pending).
		Return(errs.NewConflictError("order", stale.ID(), order.Pending)).Once()
	s.repo.On("Get", s.ctx, stale.ID()).Return(fresh, nil).Once()

	_, err = s.handler.Handle(s.ctx, s.command(stale.ID(), actor(s.T(), session.Admin), order.Cancelled, nil))

	s.Require().ErrorIs(err, services.ErrNoOp)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestRetriesExhausted() {
	current := orderIn(s.T(), order.Pending)
	conflict := errs.NewConflictError("order", current.ID(), order.Pending)

	s.repo.On("Get", s.ctx, current.ID()).Return(current, nil)
	s.repo.On("Update", s.ctx, mock.AnythingOfType("*order.Order"), order.Pending).Return(conflict)

	_, err := s.handler.Handle(s.ctx, s.command(current.ID(), actor(s.T(), session.Admin), order.Assigned, nil))

	s.Require().ErrorIs(err, errs.ErrConflict)
	// one attempt plus two retries
	s.factory.AssertNumberOfCalls(s.T(), "Create", 3)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *ChangeOrderStatusCommandHandlerTestSuite) TestEventWriteFailureRollsBack() {
	current := orderIn(s.T(), order.Assigned)
	s.repo.On("Get", s.ctx, current.ID()).Return(current, nil).Once()
	s.repo.On("Update", s.ctx, mock.AnythingOfType("*order.Order"), order.Assigned).Return(nil).Once()
	s.events.On("Add", s.ctx, mock.AnythingOfType("order.StatusChanged")).Return(errors.New("disk full")).Once()

	_, err := s.handler.Handle(s.ctx, s.command(current.ID(), actor(s.T(), session.Admin), order.Review, nil))

	s.Require().EqualError(err, "disk full")
	s.uow.AssertCalled(s.T(), "Rollback", s.ctx)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func TestChangeOrderStatusCommandHandler(t *testing.T) {
	suite.Run(t, new(ChangeOrderStatusCommandHandlerTestSuite))
}

func TestChangeOrderStatusCommandHandler_NotConstructed(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewChangeOrderStatusCommandHandler(factory, services.NewOrderWorkflow(clock), 0)

	_, err := h.Handle(t.Context(), commands.ChangeOrderStatusCommand{})

	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
	assert.Empty(t, factory.Calls)
}
