package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-asistente-be/internal/constant"
	"rental-asistente-be/internal/dto"
	"rental-asistente-be/internal/entity"
	"rental-asistente-be/internal/pkg/logger"
	"rental-asistente-be/internal/pkg/serverutils"
	"rental-asistente-be/internal/repository/memory"
	"rental-asistente-be/internal/repository/specification"
	"rental-asistente-be/internal/repository/unitofwork"
	"rental-asistente-be/pkg/discovery/classifier"
	"rental-asistente-be/pkg/discovery/index"
	"rental-asistente-be/pkg/discovery/recovery"
	"rental-asistente-be/pkg/events"
	pktNats "rental-asistente-be/pkg/nats"
	"rental-asistente-be/pkg/store"

	"github.com/google/uuid"
)

// IAssistantService defines the conversational assistant interface.
type IAssistantService interface {
	SendMessage(ctx context.Context, userId string, sessionId string, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
}

// assistantService drives the per-session dialogue state machine. One
// transition per inbound message; the optional request fields are applied in
// a fixed order: selection, duration, free text, confirmation, clear,
// finalize. Everything except finalize-without-identity degrades to a
// structured reply.
type assistantService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessionRepo    *memory.SessionRepository
	classifier     *classifier.Classifier
	indexCache     *index.Cache
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	sessionRepo *memory.SessionRepository,
	cls *classifier.Classifier,
	indexCache *index.Cache,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		uowFactory:     uowFactory,
		sessionRepo:    sessionRepo,
		classifier:     cls,
		indexCache:     indexCache,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *assistantService) SendMessage(ctx context.Context, userId string, sessionId string, request *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	session := s.loadSession(sessionId, userId)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	resp := &dto.SendMessageResponse{SessionId: session.ID}
	handled := false

	// 1. Explicit selection
	if len(request.Seleccion) > 0 {
		s.applySelection(ctx, uow, session, request.Seleccion, resp)
		handled = true
	}

	// 2. Duration
	if request.Dias > 0 {
		session.Days = request.Dias
		resp.Respuesta = fmt.Sprintf(constant.MsgDurationSaved, session.Days)
		if len(session.Selections) > 0 {
			session.State = store.StateReadyToQuote
			s.attachQuotePreview(ctx, uow, session, resp)
		}
		handled = true
	}

	// 3. Free-text message
	if msg := strings.TrimSpace(request.Mensaje); msg != "" {
		s.applyMessage(ctx, uow, session, msg, resp)
		handled = true
	}

	// 4. Confirm pending intentions
	if request.ConfirmIntencion {
		s.applyConfirmation(ctx, uow, session, request.Intenciones, resp)
		handled = true
	}

	// 5. Clear quote
	if request.LimpiarCotizacion {
		session.ClearQuote()
		session.State = store.StateIdle
		resp.Respuesta = constant.MsgQuoteCleared
		resp.LimpiarChat = true
		resp.Cotizacion = nil
		resp.Total = 0
		handled = true
	}

	// 6. Finalize
	if request.TerminarCotizacion {
		if err := s.applyFinalize(ctx, uow, session, userId, resp); err != nil {
			return nil, err
		}
		handled = true
	}

	if !handled {
		resp.Respuesta = constant.MsgGreeting
		resp.OptionGroups = s.fullCatalog(ctx, uow)
	}

	resp.Selecciones = session.Selections
	resp.Days = session.Days
	s.sessionRepo.Save(session)

	return resp, nil
}

func (s *assistantService) loadSession(sessionId, userId string) *store.Session {
	if sessionId != "" {
		if existing, ok := s.sessionRepo.Get(sessionId); ok {
			if existing.UserID == "" {
				existing.UserID = userId
			}
			return existing
		}
	}
	if sessionId == "" {
		sessionId = uuid.NewString()
	}
	return &store.Session{
		ID:     sessionId,
		UserID: userId,
		State:  store.StateIdle,
	}
}

// applySelection merges resolvable ids into the session. Unresolvable ids
// are dropped without comment; the boundary already removed non-numeric and
// non-positive entries.
func (s *assistantService) applySelection(ctx context.Context, uow unitofwork.UnitOfWork, session *store.Session, ids []uint, resp *dto.SendMessageResponse) {
	items, err := uow.ServiceItemRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		s.logger.Warn("AssistantService", "Failed to resolve selection ids", map[string]interface{}{"error": err.Error()})
		items = nil
	}

	valid := make([]uint, 0, len(items))
	for _, item := range items {
		valid = append(valid, item.Id)
	}
	session.AddSelections(valid)

	if len(session.Selections) == 0 {
		resp.Respuesta = constant.MsgGenericFallback
		resp.OptionGroups = s.fullCatalog(ctx, uow)
		return
	}

	resp.Respuesta = fmt.Sprintf(constant.MsgSelectionAdded, len(session.Selections))
	if session.Days == 0 {
		session.State = store.StateAwaitingDuration
		resp.Respuesta = fmt.Sprintf("%s %s", resp.Respuesta, constant.MsgAskDuration)
		return
	}

	session.State = store.StateReadyToQuote
	s.attachQuotePreview(ctx, uow, session, resp)
}

// applyMessage runs the classifier over free text, falling back to recovery
// and finally to the generic catalog prompt. No branch here ever returns an
// error to the caller.
func (s *assistantService) applyMessage(ctx context.Context, uow unitofwork.UnitOfWork, session *store.Session, message string, resp *dto.SendMessageResponse) {
	session.LastQuery = message

	result := s.classifier.Classify(ctx, message)
	if result.Matched() {
		s.offerService(ctx, uow, session, result.Service, resp)
		return
	}

	outcome, err := recovery.Attempt(ctx, s.classifier, s.indexCache, message)
	if err != nil {
		s.logger.Warn("AssistantService", "Recovery attempt errored", map[string]interface{}{"error": err.Error(), "query": message})
		outcome = nil
	}

	if outcome != nil && outcome.Classification.Matched() {
		s.offerService(ctx, uow, session, outcome.Classification.Service, resp)
		return
	}

	if best := outcome.BestSuggestion(); best != "" {
		resp.Respuesta = fmt.Sprintf(constant.MsgDidYouMean, best)
		resp.Sugerencias = outcome.Suggestions
		return
	}

	resp.Respuesta = constant.MsgGenericFallback
	resp.OptionGroups = s.fullCatalog(ctx, uow)
	session.State = store.StateAwaitingSelection
}

func (s *assistantService) offerService(ctx context.Context, uow unitofwork.UnitOfWork, session *store.Session, serviceName string, resp *dto.SendMessageResponse) {
	session.AddIntention(serviceName)
	session.State = store.StateAwaitingSelection

	resp.Respuesta = fmt.Sprintf(constant.MsgServiceDetected, serviceName)
	if group := s.groupForService(ctx, uow, serviceName); group != nil {
		resp.OptionGroups = append(resp.OptionGroups, *group)
	}
	resp.Actions = append(resp.Actions, dto.Action{
		Id:    "ver_servicio",
		Label: fmt.Sprintf(constant.ActionLabelViewService, serviceName),
		Metadata: map[string]interface{}{
			"servicio": serviceName,
			"dias":     session.Days,
		},
	})
}

// applyConfirmation resolves the named intentions (or the pending ones when
// the request names none) against the catalog and presents whatever matched.
func (s *assistantService) applyConfirmation(ctx context.Context, uow unitofwork.UnitOfWork, session *store.Session, intentions []string, resp *dto.SendMessageResponse) {
	names := intentions
	if len(names) == 0 {
		names = session.PendingIntentions
	}
	session.PendingIntentions = nil

	var groups []dto.OptionGroup
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if group := s.groupForService(ctx, uow, name); group != nil {
			groups = append(groups, *group)
		}
	}

	if len(groups) == 0 {
		resp.Respuesta = constant.MsgIntentionNoMatches
		resp.OptionGroups = s.fullCatalog(ctx, uow)
		return
	}

	session.State = store.StateAwaitingSelection
	resp.Respuesta = constant.MsgIntentionOptions
	resp.OptionGroups = groups
	for _, g := range groups {
		resp.Actions = append(resp.Actions, dto.Action{
			Id:    "ver_servicio",
			Label: fmt.Sprintf(constant.ActionLabelViewService, g.Servicio),
			Metadata: map[string]interface{}{
				"servicio": g.Servicio,
				"dias":     session.Days,
			},
		})
	}
}

// applyFinalize persists one quote row per selected item inside a single
// transaction, publishes the finalized event and resets the quote state.
// Missing identity is the one hard failure of the whole dialogue.
func (s *assistantService) applyFinalize(ctx context.Context, uow unitofwork.UnitOfWork, session *store.Session, userId string, resp *dto.SendMessageResponse) error {
	if userId == "" {
		return serverutils.ErrIdentityRequired
	}
	ownerId, err := uuid.Parse(userId)
	if err != nil {
		return serverutils.ErrIdentityRequired
	}

	if len(session.Selections) == 0 {
		resp.Respuesta = constant.MsgNothingToFinalize
		return nil
	}

	items, err := uow.ServiceItemRepository().FindAll(ctx, specification.ByIDs{IDs: session.Selections})
	if err != nil {
		return fmt.Errorf("failed to resolve quoted items: %w", err)
	}

	days := session.Days
	if days < 1 {
		days = 1
	}

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	now := time.Now()
	var total float64
	lines := make([]dto.QuoteLine, 0, len(items))
	for _, item := range items {
		quote := &entity.Quote{
			Id:            uuid.New(),
			UserId:        ownerId,
			ServiceItemId: item.Id,
			ItemName:      item.Name,
			Amount:        item.Price,
			Days:          days,
			CreatedAt:     now,
		}
		if err := uow.QuoteRepository().Create(ctx, quote); err != nil {
			return fmt.Errorf("failed to save quote for item %d: %w", item.Id, err)
		}

		subtotal := item.Price * float64(days)
		total += subtotal
		lines = append(lines, dto.QuoteLine{
			ItemId:   item.Id,
			Nombre:   item.Name,
			Precio:   item.Price,
			Dias:     days,
			Subtotal: subtotal,
		})
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit quotes: %w", err)
	}

	if s.eventPublisher != nil {
		evt := events.QuoteFinalized{
			UserID:     userId,
			QuoteCount: len(lines),
			Total:      total,
			Days:       days,
			OccurredAt: now,
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("AssistantService", "Failed to publish quote finalized event", map[string]interface{}{"error": err.Error()})
		}
	}

	session.ClearQuote()
	session.State = store.StateFinalized

	resp.Respuesta = fmt.Sprintf(constant.MsgQuoteFinalized, total)
	resp.Cotizacion = lines
	resp.Total = total
	resp.LimpiarChat = true
	return nil
}

// attachQuotePreview prices the current selections. Line amount is item
// price times max(days, 1) so a preview exists before duration is captured.
func (s *assistantService) attachQuotePreview(ctx context.Context, uow unitofwork.UnitOfWork, session *store.Session, resp *dto.SendMessageResponse) {
	items, err := uow.ServiceItemRepository().FindAll(ctx, specification.ByIDs{IDs: session.Selections})
	if err != nil {
		s.logger.Warn("AssistantService", "Failed to build quote preview", map[string]interface{}{"error": err.Error()})
		return
	}

	days := session.Days
	if days < 1 {
		days = 1
	}

	var total float64
	lines := make([]dto.QuoteLine, 0, len(items))
	for _, item := range items {
		subtotal := item.Price * float64(days)
		total += subtotal
		lines = append(lines, dto.QuoteLine{
			ItemId:   item.Id,
			Nombre:   item.Name,
			Precio:   item.Price,
			Dias:     days,
			Subtotal: subtotal,
		})
	}

	resp.Respuesta = fmt.Sprintf(constant.MsgQuotePreview, days)
	resp.Cotizacion = lines
	resp.Total = total
}

func (s *assistantService) groupForService(ctx context.Context, uow unitofwork.UnitOfWork, serviceName string) *dto.OptionGroup {
	items, err := uow.ServiceItemRepository().FindAll(ctx,
		specification.ItemsByServiceName{Name: serviceName},
		specification.OrderBy{Clause: "service_items.id asc"},
	)
	if err != nil {
		s.logger.Warn("AssistantService", "Failed to load service items", map[string]interface{}{"error": err.Error(), "service": serviceName})
		return nil
	}
	if len(items) == 0 {
		return nil
	}

	group := &dto.OptionGroup{Servicio: items[0].ServiceName}
	for _, item := range items {
		group.Opciones = append(group.Opciones, dto.CatalogOption{
			Id:          item.Id,
			Nombre:      item.Name,
			Descripcion: item.Description,
			Precio:      item.Price,
		})
	}
	return group
}

func (s *assistantService) fullCatalog(ctx context.Context, uow unitofwork.UnitOfWork) []dto.OptionGroup {
	services, err := uow.ServiceRepository().FindAll(ctx, specification.OrderBy{Clause: "name asc"})
	if err != nil {
		s.logger.Warn("AssistantService", "Failed to load catalog", map[string]interface{}{"error": err.Error()})
		return nil
	}

	var groups []dto.OptionGroup
	for _, svc := range services {
		if group := s.groupForService(ctx, uow, svc.Name); group != nil {
			groups = append(groups, *group)
		}
	}
	return groups
}
