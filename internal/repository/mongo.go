package repository

import (
	"application-service/internal/config"
	"application-service/internal/repository/model"
	"application-service/internal/repository/registrytypes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	databaseName = "application-service"

	draftCollectionName  = "drafts"
	ledgerCollectionName = "ledgers"
)

var (
	AlreadyActiveError   = errors.New("player already has an active application")
	NoActiveDraftError   = errors.New("player has no active application")
	AlreadyCompleteError = errors.New("application already has every answer")
	IncompleteDraftError = errors.New("application still has unanswered questions")
)

type mongoRepository struct {
	logger *zap.SugaredLogger

	database *mongo.Database

	draftCollection  *mongo.Collection
	ledgerCollection *mongo.Collection
}

func NewMongoRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg config.MongoDBConfig) (Repository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetRegistry(createCodecRegistry()))
	if err != nil {
		return nil, err
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Errorw("failed to disconnect from mongo", "error", err)
		}
	}()

	database := client.Database(databaseName)
	return &mongoRepository{
		logger:           logger,
		database:         database,
		draftCollection:  database.Collection(draftCollectionName),
		ledgerCollection: database.Collection(ledgerCollectionName),
	}, nil
}

func (m *mongoRepository) CreateDraft(ctx context.Context, draft *model.Draft) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.draftCollection.InsertOne(ctx, draft)
	if mongo.IsDuplicateKeyError(err) {
		return AlreadyActiveError
	}
	return err
}

func (m *mongoRepository) GetDraft(ctx context.Context, playerId uuid.UUID) (*model.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var draft model.Draft
	err := m.draftCollection.FindOne(ctx, bson.M{"_id": playerId}).Decode(&draft)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NoActiveDraftError
		}
		return nil, err
	}

	return &draft, nil
}

// answersNotFull matches drafts with at least one unanswered question.
var answersNotFull = bson.M{"$lt": bson.A{
	bson.M{"$size": "$answers"},
	bson.M{"$size": "$questions"},
}}

// answersFull matches drafts whose every question is answered.
var answersFull = bson.M{"$eq": bson.A{
	bson.M{"$size": "$answers"},
	bson.M{"$size": "$questions"},
}}

func (m *mongoRepository) AppendDraftAnswer(ctx context.Context, playerId uuid.UUID, answer string) (*model.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":    playerId,
		"status": model.StatusInProgress,
		"$expr":  answersNotFull,
	}

	var draft model.Draft
	err := m.draftCollection.FindOneAndUpdate(ctx, filter,
		bson.M{"$push": bson.M{"answers": answer}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&draft)

	if err == nil {
		return &draft, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	// The guarded update matched nothing. Tell the caller why.
	existing, getErr := m.GetDraft(ctx, playerId)
	if getErr != nil {
		return nil, getErr
	}
	if existing.Status != model.StatusInProgress || existing.Complete() {
		return nil, AlreadyCompleteError
	}
	return nil, NoActiveDraftError
}

func (m *mongoRepository) MarkDraftPending(ctx context.Context, playerId uuid.UUID) (*model.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"_id":    playerId,
		"status": model.StatusInProgress,
		"$expr":  answersFull,
	}

	var draft model.Draft
	err := m.draftCollection.FindOneAndUpdate(ctx, filter,
		bson.M{"$set": bson.M{"status": model.StatusPending}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&draft)

	if err == nil {
		return &draft, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	existing, getErr := m.GetDraft(ctx, playerId)
	if getErr != nil {
		return nil, getErr
	}
	if existing.Status == model.StatusPending {
		return existing, nil
	}
	return nil, IncompleteDraftError
}

func (m *mongoRepository) DeleteDraft(ctx context.Context, playerId uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := m.draftCollection.DeleteOne(ctx, bson.M{"_id": playerId})
	return err
}

func (m *mongoRepository) TakePendingDraft(ctx context.Context, playerId uuid.UUID) (*model.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Guarded delete: only one decider can claim the draft.
	var draft model.Draft
	err := m.draftCollection.FindOneAndDelete(ctx, bson.M{
		"_id":    playerId,
		"status": model.StatusPending,
	}).Decode(&draft)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NoActiveDraftError
		}
		return nil, err
	}

	return &draft, nil
}

func (m *mongoRepository) GetPendingDrafts(ctx context.Context) ([]*model.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := m.draftCollection.Find(ctx, bson.M{"status": model.StatusPending})
	if err != nil {
		return nil, err
	}

	return decodeDrafts(ctx, cursor)
}

func (m *mongoRepository) GetDraftsStartedBefore(ctx context.Context, cutoff time.Time) ([]*model.Draft, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"startedAt": bson.M{"$lt": cutoff},
		"status":    bson.M{"$in": bson.A{model.StatusInProgress, model.StatusPending}},
	}

	cursor, err := m.draftCollection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	return decodeDrafts(ctx, cursor)
}

func (m *mongoRepository) AppendOutcome(ctx context.Context, playerId uuid.UUID, entry model.LedgerEntry) error {
	ledger, err := m.GetLedger(ctx, playerId)
	if err != nil {
		return err
	}

	ledger.AppendOutcome(entry)
	return m.ReplaceLedger(ctx, ledger)
}

func (m *mongoRepository) RemoveOpenEntries(ctx context.Context, playerId uuid.UUID, roleId string) error {
	ledger, err := m.GetLedger(ctx, playerId)
	if err != nil {
		return err
	}

	ledger.RemoveOpenEntries(roleId)
	return m.ReplaceLedger(ctx, ledger)
}

func (m *mongoRepository) GetLedger(ctx context.Context, playerId uuid.UUID) (*model.Ledger, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var ledger model.Ledger
	err := m.ledgerCollection.FindOne(ctx, bson.M{"_id": playerId}).Decode(&ledger)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &model.Ledger{PlayerId: playerId, Entries: []model.LedgerEntry{}}, nil
		}
		return nil, err
	}

	return &ledger, nil
}

func (m *mongoRepository) ReplaceLedger(ctx context.Context, ledger *model.Ledger) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Whole-document replace: readers never observe a half-written history.
	_, err := m.ledgerCollection.ReplaceOne(ctx, bson.M{"_id": ledger.PlayerId}, ledger,
		options.Replace().SetUpsert(true))
	return err
}

func (m *mongoRepository) GetAllLedgers(ctx context.Context) ([]*model.Ledger, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cursor, err := m.ledgerCollection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var result []model.Ledger
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	slice := make([]*model.Ledger, len(result))
	for i := range result {
		slice[i] = &result[i]
	}
	return slice, nil
}

func decodeDrafts(ctx context.Context, cursor *mongo.Cursor) ([]*model.Draft, error) {
	var result []model.Draft
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	slice := make([]*model.Draft, len(result))
	for i := range result {
		slice[i] = &result[i]
	}
	return slice, nil
}

func createCodecRegistry() *bsoncodec.Registry {
	return bson.NewRegistryBuilder().
		RegisterTypeEncoder(registrytypes.UUIDType, bsoncodec.ValueEncoderFunc(registrytypes.UuidEncodeValue)).
		RegisterTypeDecoder(registrytypes.UUIDType, bsoncodec.ValueDecoderFunc(registrytypes.UuidDecodeValue)).
		Build()
}
