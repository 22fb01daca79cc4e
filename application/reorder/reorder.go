package reorder

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math/rand/v2"
	"time"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/restock/cmd/config"
	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/forecast"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/planner"
	eventrepo "github.com/muhammadheryan/restock/repository/event"
	itemrepo "github.com/muhammadheryan/restock/repository/item"
	porepo "github.com/muhammadheryan/restock/repository/purchaseorder"
	redisrepo "github.com/muhammadheryan/restock/repository/redis"
	txrepo "github.com/muhammadheryan/restock/repository/tx"
	utilsContext "github.com/muhammadheryan/restock/utils/context"
	"github.com/muhammadheryan/restock/utils/errors"
	"github.com/muhammadheryan/restock/utils/logger"
	validatorx "github.com/muhammadheryan/restock/utils/validator"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NoticePublisher delivers delivery risk notices to downstream consumers.
type NoticePublisher interface {
	PublishDeliveryRisk(ctx context.Context, msg model.DeliveryRiskMessage) error
}

type ReorderApp interface {
	GetSuggestions(ctx context.Context, tenantID uint64, req *model.ReorderRequest) (*model.ReorderResponse, error)
	ExportSuggestions(ctx context.Context, tenantID uint64, req *model.ReorderRequest) ([]byte, error)
	InvalidateCache(ctx context.Context, tenantID uint64) error
}

type Option func(*reorderAppImpl)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(s *reorderAppImpl) { s.now = now }
}

// WithRand seeds the NEURAL model, making its output reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(s *reorderAppImpl) { s.rng = rng }
}

type reorderAppImpl struct {
	config            *config.Config
	txRepo            txrepo.TxRepository
	eventRepo         eventrepo.EventRepository
	itemRepo          itemrepo.ItemRepository
	purchaseOrderRepo porepo.PurchaseOrderRepository
	redisRepo         redisrepo.Repository
	publisher         NoticePublisher
	now               func() time.Time
	rng               *rand.Rand
}

func NewReorderApp(
	config *config.Config,
	txRepo txrepo.TxRepository,
	eventRepo eventrepo.EventRepository,
	itemRepo itemrepo.ItemRepository,
	purchaseOrderRepo porepo.PurchaseOrderRepository,
	redisRepo redisrepo.Repository,
	publisher NoticePublisher,
	opts ...Option,
) ReorderApp {
	s := &reorderAppImpl{
		config:            config,
		txRepo:            txRepo,
		eventRepo:         eventRepo,
		itemRepo:          itemRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		redisRepo:         redisRepo,
		publisher:         publisher,
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *reorderAppImpl) GetSuggestions(ctx context.Context, tenantID uint64, req *model.ReorderRequest) (*model.ReorderResponse, error) {
	kind, days, err := s.normalize(req)
	if err != nil {
		return nil, err
	}

	today := s.now()
	key := cacheKey(tenantID, today, kind, days)
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	in, err := s.loadSnapshot(ctx, tenantID, today, days)
	if err != nil {
		return nil, err
	}
	in.Model = kind
	in.Rand = s.rng

	res, err := planner.Run(*in)
	if err != nil {
		logger.Error("[GetSuggestions] planner.Run", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	logger.Info("[GetSuggestions] computed",
		zap.String("request_id", utilsContext.GetRequestID(ctx)),
		zap.Uint64("tenant_id", tenantID),
		zap.String("model", string(kind)),
		zap.Int("analysis_days", days),
		zap.Int("items", len(in.Items)),
		zap.Int("suggestions", len(res.Suggestions)),
		zap.Int("critical", res.Summary.Critical),
		zap.Int("notifications", len(res.Notifications)),
	)

	s.toCache(ctx, key, res)
	s.publishNotices(ctx, tenantID, res.Notifications)

	return res, nil
}

func (s *reorderAppImpl) InvalidateCache(ctx context.Context, tenantID uint64) error {
	deleted, err := s.redisRepo.DeleteByPrefix(ctx, cachePrefix(tenantID))
	if err != nil {
		logger.Error("[InvalidateCache] redisRepo.DeleteByPrefix", zap.Uint64("tenant_id", tenantID), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	logger.Debug("[InvalidateCache] done", zap.Uint64("tenant_id", tenantID), zap.Int64("deleted", deleted))
	return nil
}

// normalize validates the request and fills in configured defaults.
func (s *reorderAppImpl) normalize(req *model.ReorderRequest) (constant.ForecastModel, int, error) {
	if req == nil {
		req = &model.ReorderRequest{}
	}

	if err := validatorx.ValidateStruct(req); err != nil {
		var verrs gpvalidator.ValidationErrors
		if stderrors.As(err, &verrs) {
			for _, fe := range verrs {
				switch fe.Field() {
				case "Model":
					return "", 0, errors.SetCustomError(constant.ErrInvalidModel)
				case "AnalysisDays":
					return "", 0, errors.SetCustomError(constant.ErrInvalidAnalysisDays)
				}
			}
		}
		return "", 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	raw := req.Model
	if raw == "" && s.config != nil {
		raw = s.config.Reorder.DefaultModel
	}
	kind, ok := constant.ParseForecastModel(raw)
	if !ok {
		kind = constant.ModelSMA
	}

	days := req.AnalysisDays
	if days == 0 && s.config != nil {
		days = s.config.Reorder.DefaultAnalysisDays
	}
	if days <= 0 {
		days = constant.DefaultAnalysisDays
	}

	return kind, days, nil
}

// loadSnapshot reads every collaborator input inside one read-only transaction.
func (s *reorderAppImpl) loadSnapshot(ctx context.Context, tenantID uint64, today time.Time, days int) (*planner.Input, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[loadSnapshot] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	items, err := s.itemRepo.ListItemsTx(ctx, tx, tenantID)
	if err != nil {
		logger.Error("[loadSnapshot] list items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	in := &planner.Input{
		Items:        items,
		AnalysisDays: days,
		Today:        today,
	}
	if len(items) == 0 {
		// Nothing to plan, but overdue orders can still exist.
		in.Orders, err = s.purchaseOrderRepo.ListOverdueTx(ctx, tx, tenantID, startOfDay(today))
		if err != nil {
			logger.Error("[loadSnapshot] list overdue orders", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if err := s.txRepo.CommitTx(tx); err != nil {
			logger.Error("[loadSnapshot] commit tx", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		committed = true
		return in, nil
	}

	in.Suppliers, err = s.itemRepo.ListPreferredSuppliersTx(ctx, tx, tenantID)
	if err != nil {
		logger.Error("[loadSnapshot] list suppliers", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	in.Events, err = s.eventRepo.ListStockEventsTx(ctx, tx, tenantID, forecast.WindowStart(today, days))
	if err != nil {
		logger.Error("[loadSnapshot] list stock events", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	in.Pending, err = s.purchaseOrderRepo.ListPendingQuantitiesTx(ctx, tx, tenantID)
	if err != nil {
		logger.Error("[loadSnapshot] list pending quantities", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	in.Orders, err = s.purchaseOrderRepo.ListOverdueTx(ctx, tx, tenantID, startOfDay(today))
	if err != nil {
		logger.Error("[loadSnapshot] list overdue orders", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[loadSnapshot] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return in, nil
}

func (s *reorderAppImpl) fromCache(ctx context.Context, key string) (*model.ReorderResponse, bool) {
	raw, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		if !stderrors.Is(err, goredis.Nil) {
			logger.Warn("[GetSuggestions] redisRepo.Get", zap.String("key", key), zap.String("error", err.Error()))
		}
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	var res model.ReorderResponse
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		logger.Warn("[GetSuggestions] drop undecodable cache entry", zap.String("key", key), zap.String("error", err.Error()))
		if err := s.redisRepo.Delete(ctx, key); err != nil {
			logger.Warn("[GetSuggestions] redisRepo.Delete", zap.String("key", key), zap.String("error", err.Error()))
		}
		return nil, false
	}
	return &res, true
}

func (s *reorderAppImpl) toCache(ctx context.Context, key string, res *model.ReorderResponse) {
	if s.config == nil || s.config.Reorder.CacheTTL <= 0 {
		return
	}
	body, err := json.Marshal(res)
	if err != nil {
		logger.Error("[GetSuggestions] marshal cache entry", zap.String("error", err.Error()))
		return
	}
	if err := s.redisRepo.SetWithTTL(ctx, key, string(body), s.config.Reorder.CacheTTL); err != nil {
		logger.Warn("[GetSuggestions] redisRepo.SetWithTTL", zap.String("key", key), zap.String("error", err.Error()))
	}
}

func (s *reorderAppImpl) publishNotices(ctx context.Context, tenantID uint64, notices []model.DeliveryRiskNotice) {
	if s.publisher == nil {
		return
	}
	for _, n := range notices {
		msg := model.DeliveryRiskMessage{TenantID: tenantID, Notice: n}
		if err := s.publisher.PublishDeliveryRisk(ctx, msg); err != nil {
			logger.Error("[GetSuggestions] publish delivery risk", zap.Uint64("order_id", n.OrderID), zap.String("error", err.Error()))
		}
	}
}

func cachePrefix(tenantID uint64) string {
	return fmt.Sprintf("reorder:%d:", tenantID)
}

func cacheKey(tenantID uint64, today time.Time, kind constant.ForecastModel, days int) string {
	return fmt.Sprintf("%s%s:%s:%d", cachePrefix(tenantID), today.Format("2006-01-02"), kind, days)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
