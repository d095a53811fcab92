package resource

import (
	"context"
	"net/url"
	"testing"

	"github.com/erp/erpapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGadgetService(t *testing.T, def Definition) (*Service[gadget], *MockRepository[gadget], *MockReferences, *recordingAuditor) {
	t.Helper()
	repo := new(MockRepository[gadget])
	refs := new(MockReferences)
	auditor := &recordingAuditor{}
	svc := NewService[gadget](def, repo, Deps{References: refs, Auditor: auditor})
	return svc, repo, refs, auditor
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("applies defaults, derives totals and redacts output", func(t *testing.T) {
		svc, repo, _, _ := newGadgetService(t, gadgets)
		repo.On("Exists", ctx, map[string]any{"code": "G-1"}, uuid.Nil).Return(false, nil)
		var stored *gadget
		repo.On("Create", ctx, mock.AnythingOfType("*resource.gadget")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*gadget) }).
			Return(nil)

		out, err := svc.Create(ctx, []byte(`{"code":"G-1","price":"2.50","quantity":4,"secret":"s3cret","total":"1.00"}`))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, out.ID)
		assert.Equal(t, gadgetStatus("NEW"), out.Status)
		assert.True(t, out.IsActive)
		assert.Equal(t, "10.00", out.Total.StringFixed(2))
		assert.Empty(t, out.Secret)
		require.NotNil(t, stored)
		assert.Equal(t, "s3cret", stored.Secret)
		repo.AssertExpectations(t)
	})

	t.Run("reports every failing field and stores nothing", func(t *testing.T) {
		svc, repo, _, _ := newGadgetService(t, gadgets)

		_, err := svc.Create(ctx, []byte(`{"status":"BROKEN","price":"1.234","contact":"nope"}`))

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"This field is required."}, verr.Fields["code"])
		assert.Equal(t, []string{`"BROKEN" is not a valid choice.`}, verr.Fields["status"])
		assert.Equal(t, []string{"Ensure that there are no more than 2 decimal places."}, verr.Fields["price"])
		assert.Equal(t, []string{"Enter a valid email address."}, verr.Fields["contact"])
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate unique value", func(t *testing.T) {
		svc, repo, _, _ := newGadgetService(t, gadgets)
		repo.On("Exists", ctx, map[string]any{"code": "G-1"}, uuid.Nil).Return(true, nil)

		_, err := svc.Create(ctx, []byte(`{"code":"G-1","price":"1.00"}`))

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"workshop gadget with this code already exists."}, verr.Fields["code"])
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing reference", func(t *testing.T) {
		svc, repo, refs, _ := newGadgetService(t, gadgets)
		owner := uuid.New()
		repo.On("Exists", ctx, mock.Anything, uuid.Nil).Return(false, nil)
		refs.On("ReferenceExists", ctx, "workshop_owners", owner).Return(false, nil)

		_, err := svc.Create(ctx, []byte(`{"code":"G-2","price":"1.00","owner":"`+owner.String()+`"}`))

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{`Invalid pk "` + owner.String() + `" - object does not exist.`}, verr.Fields["owner"])
	})

	t.Run("body must be an object", func(t *testing.T) {
		svc, _, _, _ := newGadgetService(t, gadgets)
		_, err := svc.Create(ctx, []byte(`["code"]`))

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, shared.NonFieldErrors)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newGadgetService(t, gadgets)

	repo.On("Count", ctx, mock.Anything).Return(int64(2500), nil)
	repo.On("FindAll", ctx, mock.MatchedBy(func(q shared.Query) bool {
		return q.Limit == 1000 && q.Offset == 1000 &&
			len(q.Conditions) == 1 && q.Conditions[0].Field == "status" &&
			q.Search != nil && q.Search.Terms[0] == "acme"
	})).Return([]gadget{{Code: "A", Secret: "hidden"}}, nil)

	page, err := svc.List(ctx, url.Values{
		"page_size": {"5000"},
		"page":      {"2"},
		"status":    {"USED"},
		"search":    {"acme"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2500), page.Count)
	assert.Equal(t, 1000, page.PageSize)
	assert.Equal(t, 3, page.NumPages)
	assert.True(t, page.HasNext())
	assert.True(t, page.HasPrevious())
	require.Len(t, page.Results, 1)
	assert.Empty(t, page.Results[0].Secret)
	repo.AssertExpectations(t)
}

func TestService_ListInvalidFilter(t *testing.T) {
	svc, repo, _, _ := newGadgetService(t, gadgets)

	_, err := svc.List(context.Background(), url.Values{"status": {"BROKEN"}})

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "status")
	repo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	existing := func() *gadget {
		g := &gadget{Code: "G-1", Status: "NEW", Price: decimal.RequireFromString("1.00"), Quantity: 2}
		g.ID = id
		return g
	}

	t.Run("partial update keeps omitted fields and skips unchanged unique checks", func(t *testing.T) {
		svc, repo, _, _ := newGadgetService(t, gadgets)
		repo.On("FindByID", ctx, id).Return(existing(), nil)
		repo.On("Update", ctx, mock.AnythingOfType("*resource.gadget")).Return(nil)

		out, err := svc.Update(ctx, id, []byte(`{"status":"USED"}`), true)

		require.NoError(t, err)
		assert.Equal(t, gadgetStatus("USED"), out.Status)
		assert.Equal(t, "G-1", out.Code)
		assert.Equal(t, "2.00", out.Total.StringFixed(2))
		repo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("full update requires required fields", func(t *testing.T) {
		svc, repo, _, _ := newGadgetService(t, gadgets)
		repo.On("FindByID", ctx, id).Return(existing(), nil)

		_, err := svc.Update(ctx, id, []byte(`{"status":"USED"}`), false)

		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "code")
		assert.Contains(t, verr.Fields, "price")
	})

	t.Run("unique check excludes the record itself", func(t *testing.T) {
		svc, repo, _, _ := newGadgetService(t, gadgets)
		repo.On("FindByID", ctx, id).Return(existing(), nil)
		repo.On("Exists", ctx, map[string]any{"code": "G-9"}, id).Return(false, nil)
		repo.On("Update", ctx, mock.Anything).Return(nil)

		_, err := svc.Update(ctx, id, []byte(`{"code":"G-9"}`), true)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _, _ := newGadgetService(t, gadgets)
		repo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, id, []byte(`{}`), true)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestService_AppendOnly(t *testing.T) {
	def := gadgets
	def.AppendOnly = true
	svc, repo, _, _ := newGadgetService(t, def)
	id := uuid.New()

	_, err := svc.Update(context.Background(), id, []byte(`{}`), false)
	assert.ErrorIs(t, err, shared.ErrMethodNotAllowed)
	assert.Equal(t, `Method "PUT" not allowed.`, err.Error())

	_, err = svc.Update(context.Background(), id, []byte(`{}`), true)
	assert.Equal(t, `Method "PATCH" not allowed.`, err.Error())

	err = svc.Delete(context.Background(), id)
	assert.Equal(t, `Method "DELETE" not allowed.`, err.Error())
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestService_AuditsWrites(t *testing.T) {
	def := gadgets
	def.Audited = true
	svc, repo, _, auditor := newGadgetService(t, def)
	ctx := WithActor(context.Background(), Actor{User: "alice", IP: "10.0.0.8"})

	repo.On("Exists", ctx, mock.Anything, uuid.Nil).Return(false, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)
	created, err := svc.Create(ctx, []byte(`{"code":"G-1","price":"1.00"}`))
	require.NoError(t, err)

	repo.On("FindByID", ctx, created.ID).Return(created, nil)
	repo.On("Delete", ctx, created.ID).Return(nil)
	require.NoError(t, svc.Delete(ctx, created.ID))

	require.Len(t, auditor.events, 2)
	assert.Equal(t, ActionCreate, auditor.events[0].Action)
	assert.Equal(t, "WorkshopGadget", auditor.events[0].EntityType)
	assert.Equal(t, created.ID.String(), auditor.events[0].EntityID)
	assert.Nil(t, auditor.events[0].Old)
	assert.Equal(t, Actor{User: "alice", IP: "10.0.0.8"}, auditor.events[0].Actor)
	assert.Equal(t, ActionDelete, auditor.events[1].Action)
	assert.Nil(t, auditor.events[1].New)
}

func TestService_Modify(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newGadgetService(t, gadgets)
	g := &gadget{Code: "G-1", Status: "NEW", Price: decimal.RequireFromString("1.00")}
	g.ID = uuid.New()
	repo.On("FindByID", ctx, g.ID).Return(g, nil)

	_, err := svc.Modify(ctx, g.ID, func(g *gadget) error {
		g.Status = "LOST"
		return nil
	})

	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{`"LOST" is not a valid choice.`}, verr.Fields["status"])
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Input(t *testing.T) {
	svc, _, _, _ := newGadgetService(t, gadgets)

	in, err := svc.Input([]byte(`{"price":"3.10"}`), "price")
	require.NoError(t, err)
	assert.Equal(t, "3.10", in.Price.StringFixed(2))

	_, err = svc.Input([]byte(`{}`), "price")
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"This field is required."}, verr.Fields["price"])
}

func TestActorFrom(t *testing.T) {
	assert.Equal(t, Actor{User: SystemUser}, ActorFrom(context.Background()))
	ctx := WithActor(context.Background(), Actor{IP: "127.0.0.1"})
	assert.Equal(t, Actor{User: SystemUser, IP: "127.0.0.1"}, ActorFrom(ctx))
}

func TestDefinition(t *testing.T) {
	assert.Equal(t, "/workshop/gadgets/", gadgets.Route())
	assert.Equal(t, "workshop gadget", gadgets.Verbose())
	assert.Equal(t, "dashboard kpi", Definition{Name: "DashboardKPI"}.Verbose())
	assert.Equal(t, "ap reconciliation", Definition{Name: "APReconciliation"}.Verbose())
	assert.Equal(t, "owner_id", ReferenceColumn("owner"))
}
