package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rental-asistente-be/internal/dto"
	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/pkg/serverutils"
	"rental-asistente-be/internal/repository/contract"
	"rental-asistente-be/internal/repository/memory"
	"rental-asistente-be/internal/repository/specification"
	"rental-asistente-be/internal/repository/unitofwork"
	"rental-asistente-be/pkg/discovery/classifier"
	"rental-asistente-be/pkg/discovery/index"
	"rental-asistente-be/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes -----------------------------------------------------------------

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type fakeServiceRepo struct {
	services []*entity.Service
}

func (r *fakeServiceRepo) Create(ctx context.Context, svc *entity.Service) error { return nil }
func (r *fakeServiceRepo) Update(ctx context.Context, svc *entity.Service) error { return nil }
func (r *fakeServiceRepo) Delete(ctx context.Context, id uint) error             { return nil }

func (r *fakeServiceRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error) {
	all, _ := r.FindAll(ctx, specs...)
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}

func (r *fakeServiceRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error) {
	return r.services, nil
}

type fakeItemRepo struct {
	items []*entity.ServiceItem
	err   error
}

func (r *fakeItemRepo) Create(ctx context.Context, item *entity.ServiceItem) error { return nil }
func (r *fakeItemRepo) Update(ctx context.Context, item *entity.ServiceItem) error { return nil }
func (r *fakeItemRepo) Delete(ctx context.Context, id uint) error                  { return nil }

func (r *fakeItemRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceItem, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

// FindAll interprets the specifications the assistant actually uses.
func (r *fakeItemRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceItem, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := r.items
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByIDs:
			var filtered []*entity.ServiceItem
			for _, item := range out {
				for _, id := range s.IDs {
					if item.Id == id {
						filtered = append(filtered, item)
						break
					}
				}
			}
			out = filtered
		case specification.ItemsByServiceName:
			var filtered []*entity.ServiceItem
			for _, item := range out {
				if strings.Contains(strings.ToLower(item.ServiceName), strings.ToLower(s.Name)) {
					filtered = append(filtered, item)
				}
			}
			out = filtered
		case specification.ByServiceId:
			var filtered []*entity.ServiceItem
			for _, item := range out {
				if item.ServiceId == s.ServiceId {
					filtered = append(filtered, item)
				}
			}
			out = filtered
		}
	}
	return out, nil
}

type fakeQuoteRepo struct {
	created   []*entity.Quote
	createErr error
}

func (r *fakeQuoteRepo) Create(ctx context.Context, q *entity.Quote) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, q)
	return nil
}

func (r *fakeQuoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Quote, error) {
	return r.created, nil
}

func (r *fakeQuoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.created)), nil
}

type fakeNotifRepo struct{}

func (fakeNotifRepo) Create(ctx context.Context, n *entity.Notification) error { return nil }
func (fakeNotifRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	return nil, nil
}

type fakeUow struct {
	services *fakeServiceRepo
	items    *fakeItemRepo
	quotes   *fakeQuoteRepo

	began      bool
	committed  bool
	rolledBack bool
}

func (u *fakeUow) Begin(ctx context.Context) error { u.began = true; return nil }
func (u *fakeUow) Commit() error                   { u.committed = true; return nil }
func (u *fakeUow) Rollback() error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

func (u *fakeUow) ServiceRepository() contract.ServiceRepository         { return u.services }
func (u *fakeUow) ServiceItemRepository() contract.ServiceItemRepository { return u.items }
func (u *fakeUow) QuoteRepository() contract.QuoteRepository             { return u.quotes }
func (u *fakeUow) NotificationRepository() contract.NotificationRepository {
	return fakeNotifRepo{}
}

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type itemSource struct {
	repo *fakeItemRepo
}

func (s *itemSource) ListItems(ctx context.Context) ([]index.Item, error) {
	out := make([]index.Item, 0, len(s.repo.items))
	for _, item := range s.repo.items {
		out = append(out, index.Item{
			ID:          item.Id,
			Service:     item.ServiceName,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	return out, nil
}

// ---- setup -----------------------------------------------------------------

func newFixture() (IAssistantService, *fakeUow, *memory.SessionRepository) {
	uow := &fakeUow{
		services: &fakeServiceRepo{services: []*entity.Service{
			{Id: 1, Name: "Alquiler", Description: "alquiler de equipos para eventos"},
			{Id: 2, Name: "Montaje", Description: "montaje de escenarios"},
		}},
		items: &fakeItemRepo{items: []*entity.ServiceItem{
			{Id: 5, ServiceId: 1, ServiceName: "Alquiler", Name: "Equipo de Sonido", Description: "equipo completo de sonido profesional", Price: 150},
			{Id: 6, ServiceId: 1, ServiceName: "Alquiler", Name: "Luces", Description: "luces led para fiestas", Price: 80},
			{Id: 7, ServiceId: 2, ServiceName: "Montaje", Name: "Tarima", Description: "tarima para escenario", Price: 200},
		}},
		quotes: &fakeQuoteRepo{},
	}

	cache := index.NewCache(&itemSource{repo: uow.items})
	sessions := memory.NewSessionRepository()
	svc := NewAssistantService(&fakeFactory{uow: uow}, sessions, classifier.New(cache), cache, nil, noopLogger{})
	return svc, uow, sessions
}

// ---- tests -----------------------------------------------------------------

func TestSendMessageGreetingWithEmptyRequest(t *testing.T) {
	svc, _, _ := newFixture()

	resp, err := svc.SendMessage(context.Background(), "", "", &dto.SendMessageRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionId, "anonymous clients must get a session id back")
	assert.NotEmpty(t, resp.Respuesta)
	assert.Len(t, resp.OptionGroups, 2)
}

func TestSendMessageClassifiesFreeText(t *testing.T) {
	svc, _, sessions := newFixture()

	resp, err := svc.SendMessage(context.Background(), "", "s1", &dto.SendMessageRequest{Mensaje: "necesito alquiler"})
	require.NoError(t, err)

	require.Len(t, resp.OptionGroups, 1)
	assert.Equal(t, "Alquiler", resp.OptionGroups[0].Servicio)
	assert.Len(t, resp.OptionGroups[0].Opciones, 2)
	require.Len(t, resp.Actions, 1)
	assert.Equal(t, "ver_servicio", resp.Actions[0].Id)

	session, ok := sessions.Get("s1")
	require.True(t, ok)
	assert.Equal(t, store.StateAwaitingSelection, session.State)
	assert.Equal(t, []string{"Alquiler"}, session.PendingIntentions)
}

func TestSendMessageUnrecognizedFallsBackToCatalog(t *testing.T) {
	svc, _, _ := newFixture()

	resp, err := svc.SendMessage(context.Background(), "", "s1", &dto.SendMessageRequest{Mensaje: "xyzabc123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Respuesta)
	assert.Len(t, resp.OptionGroups, 2, "generic fallback lists the whole catalog")
	assert.Empty(t, resp.Sugerencias)
}

func TestSendMessageTypoGetsSuggestion(t *testing.T) {
	svc, _, _ := newFixture()

	resp, err := svc.SendMessage(context.Background(), "", "s1", &dto.SendMessageRequest{Mensaje: "quiero alqiler"})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Sugerencias)
	assert.Equal(t, "alquiler", resp.Sugerencias[0])
	assert.Contains(t, resp.Respuesta, "alquiler")
}

func TestSendMessageSelectionDeduplicates(t *testing.T) {
	svc, _, _ := newFixture()

	resp, err := svc.SendMessage(context.Background(), "", "s1", &dto.SendMessageRequest{Seleccion: dto.FlexIDList{5, 5, 5}})
	require.NoError(t, err)

	assert.Equal(t, []uint{5}, resp.Selecciones)
}

func TestSendMessageSelectionDropsUnresolvableIds(t *testing.T) {
	svc, _, _ := newFixture()

	resp, err := svc.SendMessage(context.Background(), "", "s1", &dto.SendMessageRequest{Seleccion: dto.FlexIDList{999, 1000}})
	require.NoError(t, err)

	assert.Empty(t, resp.Selecciones)
	assert.Len(t, resp.OptionGroups, 2, "nothing selectable resolved, offer the catalog again")
}

func TestSendMessageSelectionWithoutDurationAsksForIt(t *testing.T) {
	svc, _, sessions := newFixture()

	resp, err := svc.SendMessage(context.Background(), "", "s1", &dto.SendMessageRequest{Seleccion: dto.FlexIDList{5}})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Respuesta)
	assert.Empty(t, resp.Cotizacion, "no preview before duration is known")

	session, _ := sessions.Get("s1")
	assert.Equal(t, store.StateAwaitingDuration, session.State)
}

func TestSendMessageSelectionWithDurationPreviewsQuote(t *testing.T) {
	svc, _, _ := newFixture()

	resp, err := svc.SendMessage(context.Background(), "", "s1", &dto.SendMessageRequest{
		Seleccion: dto.FlexIDList{5, 7},
		Dias:      3,
	})
	require.NoError(t, err)

	require.Len(t, resp.Cotizacion, 2)
	assert.Equal(t, 3, resp.Days)
	assert.InDelta(t, (150+200)*3, resp.Total, 0.001)
	for _, line := range resp.Cotizacion {
		assert.Equal(t, 3, line.Dias)
		assert.InDelta(t, line.Precio*3, line.Subtotal, 0.001)
	}
}

func TestSendMessageDurationPersistsAcrossTurns(t *testing.T) {
	svc, _, _ := newFixture()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "", "s1", &dto.SendMessageRequest{Dias: 4})
	require.NoError(t, err)

	resp, err := svc.SendMessage(ctx, "", "s1", &dto.SendMessageRequest{Seleccion: dto.FlexIDList{6}})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Days)
	require.Len(t, resp.Cotizacion, 1)
	assert.InDelta(t, 80*4, resp.Cotizacion[0].Subtotal, 0.001)
}

func TestSendMessageConfirmIntentionResolvesNames(t *testing.T) {
	svc, _, _ := newFixture()

	resp, err := svc.SendMessage(context.Background(), "", "s1", &dto.SendMessageRequest{
		ConfirmIntencion: true,
		Intenciones:      []string{"Montaje", "NoExiste"},
	})
	require.NoError(t, err)

	require.Len(t, resp.OptionGroups, 1, "unmatched intentions are dropped")
	assert.Equal(t, "Montaje", resp.OptionGroups[0].Servicio)
}

func TestSendMessageConfirmIntentionUsesPendingWhenNoneNamed(t *testing.T) {
	svc, _, _ := newFixture()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "", "s1", &dto.SendMessageRequest{Mensaje: "necesito alquiler"})
	require.NoError(t, err)

	resp, err := svc.SendMessage(ctx, "", "s1", &dto.SendMessageRequest{ConfirmIntencion: true})
	require.NoError(t, err)

	require.Len(t, resp.OptionGroups, 1)
	assert.Equal(t, "Alquiler", resp.OptionGroups[0].Servicio)
}

func TestSendMessageClearResetsQuote(t *testing.T) {
	svc, _, sessions := newFixture()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "", "s1", &dto.SendMessageRequest{Seleccion: dto.FlexIDList{5}, Dias: 2})
	require.NoError(t, err)

	resp, err := svc.SendMessage(ctx, "", "s1", &dto.SendMessageRequest{LimpiarCotizacion: true})
	require.NoError(t, err)

	assert.True(t, resp.LimpiarChat)
	assert.Empty(t, resp.Selecciones)
	assert.Zero(t, resp.Days)

	session, _ := sessions.Get("s1")
	assert.Empty(t, session.Selections)
	assert.Zero(t, session.Days)
	assert.Equal(t, store.StateIdle, session.State)
}

func TestSendMessageClearIsIdempotent(t *testing.T) {
	svc, _, _ := newFixture()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		resp, err := svc.SendMessage(ctx, "", "s1", &dto.SendMessageRequest{LimpiarCotizacion: true})
		require.NoError(t, err)
		assert.True(t, resp.LimpiarChat)
		assert.Empty(t, resp.Selecciones)
	}
}

func TestSendMessageFinalizeRequiresIdentity(t *testing.T) {
	svc, _, _ := newFixture()
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "", "s1", &dto.SendMessageRequest{Seleccion: dto.FlexIDList{5}, Dias: 2})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, "", "s1", &dto.SendMessageRequest{TerminarCotizacion: true})
	require.Error(t, err)
	assert.True(t, errors.Is(err, serverutils.ErrIdentityRequired))
}

func TestSendMessageFinalizeWithoutSelectionsIsSoft(t *testing.T) {
	svc, uow, _ := newFixture()

	resp, err := svc.SendMessage(context.Background(), uuid.NewString(), "s1", &dto.SendMessageRequest{TerminarCotizacion: true})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Respuesta)
	assert.Empty(t, uow.quotes.created)
}

func TestSendMessageFinalizePersistsOneRowPerItem(t *testing.T) {
	svc, uow, sessions := newFixture()
	ctx := context.Background()
	userId := uuid.New()

	_, err := svc.SendMessage(ctx, userId.String(), "s1", &dto.SendMessageRequest{Seleccion: dto.FlexIDList{5, 7}, Dias: 2})
	require.NoError(t, err)

	resp, err := svc.SendMessage(ctx, userId.String(), "s1", &dto.SendMessageRequest{TerminarCotizacion: true})
	require.NoError(t, err)

	require.Len(t, uow.quotes.created, 2)
	assert.True(t, uow.began)
	assert.True(t, uow.committed)
	assert.False(t, uow.rolledBack)
	for _, q := range uow.quotes.created {
		assert.Equal(t, userId, q.UserId)
		assert.Equal(t, 2, q.Days)
		assert.False(t, q.CreatedAt.IsZero())
	}

	assert.True(t, resp.LimpiarChat)
	assert.InDelta(t, (150+200)*2, resp.Total, 0.001)
	assert.Empty(t, resp.Selecciones, "finalize clears the quote state")

	session, _ := sessions.Get("s1")
	assert.Equal(t, store.StateFinalized, session.State)
	assert.Empty(t, session.Selections)
	assert.Zero(t, session.Days)
}

func TestSendMessageFinalizeCreateErrorRollsBack(t *testing.T) {
	svc, uow, _ := newFixture()
	ctx := context.Background()
	uow.quotes.createErr = errors.New("insert failed")

	_, err := svc.SendMessage(ctx, uuid.NewString(), "s1", &dto.SendMessageRequest{Seleccion: dto.FlexIDList{5}, Dias: 1})
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, uuid.NewString(), "s1", &dto.SendMessageRequest{TerminarCotizacion: true})
	require.Error(t, err)
	assert.True(t, uow.rolledBack)
	assert.False(t, uow.committed)
}
