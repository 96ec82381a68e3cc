//go:build integration

package main_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkamodule "github.com/testcontainers/testcontainers-go/modules/kafka"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Beausejour-Hotels/service-reservation/internal/application"
	"github.com/Beausejour-Hotels/service-reservation/internal/domain/reservation"
	"github.com/Beausejour-Hotels/service-reservation/internal/events"
	"github.com/Beausejour-Hotels/service-reservation/internal/kafka"
	"github.com/Beausejour-Hotels/service-reservation/internal/locking"
	"github.com/Beausejour-Hotels/service-reservation/internal/repository"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB           *gorm.DB
	KafkaBrokers []string
	Cleanup      func()
}

// reservationStack holds wired-up reservation service components.
type reservationStack struct {
	Service         *application.ReservationService
	Consumer        *events.FrontDeskConsumer
	CleanupProducer func()
}

// setupContainers starts PostgreSQL and Kafka testcontainers and returns a
// connected GORM DB.
func setupContainers(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_reservation",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test_reservation sslmode=disable", pgHost, pgPort.Port())

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, db.AutoMigrate(
		&repository.ClientModel{},
		&repository.RoomModel{},
		&repository.ReservationModel{},
	))

	// Start Kafka container using confluent-local (supports KRaft natively).
	kafkaContainer, err := kafkamodule.Run(ctx, "confluentinc/confluent-local:7.5.0")
	require.NoError(t, err, "failed to start Kafka container")

	kafkaBrokers, err := kafkaContainer.Brokers(ctx)
	require.NoError(t, err, "failed to get Kafka brokers")

	createTopics(t, kafkaBrokers, events.TopicReservationEvents, events.TopicFrontDeskEvents)

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate Kafka container: %v", err)
		}
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{
		DB:           db,
		KafkaBrokers: kafkaBrokers,
		Cleanup:      cleanup,
	}
}

// setupReservationStack wires up the full reservation service stack.
func setupReservationStack(t *testing.T, db *gorm.DB, brokers []string) *reservationStack {
	t.Helper()
	logger, _ := zap.NewDevelopment()

	reservationRepo := repository.NewGormReservationRepository(db)
	clientRepo := repository.NewGormClientRepository(db)
	roomRepo := repository.NewGormRoomRepository(db)
	pricing := reservation.NewNightlyRatePricing()
	locker := locking.NewKeyedRoomLocker(locking.DefaultAcquireTimeout)
	producer := kafka.NewProducer(brokers, logger)

	svc := application.NewReservationService(
		reservationRepo, clientRepo, roomRepo, pricing, locker, producer, logger,
	)

	groupID := fmt.Sprintf("test-reservation-%s", uuid.New().String()[:8])
	consumer := events.NewFrontDeskConsumer(brokers, groupID, svc, logger)

	return &reservationStack{
		Service:         svc,
		Consumer:        consumer,
		CleanupProducer: func() { _ = producer.Close() },
	}
}

// seedClientAndRoom inserts a client and a room for booking against.
func seedClientAndRoom(t *testing.T, db *gorm.DB, clientID, roomID uuid.UUID) {
	t.Helper()
	now := time.Now().UTC()

	client := repository.ClientModel{
		ID:        clientID,
		FirstName: "Sophie",
		LastName:  "Laurent",
		Email:     fmt.Sprintf("sophie-%s@example.com", uuid.New().String()[:8]),
		Phone:     "+33600000000",
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(&client).Error, "failed to seed client")

	room := repository.RoomModel{
		ID:          roomID,
		Number:      fmt.Sprintf("INT%s", uuid.New().String()[:6]),
		RoomType:    "double",
		RateCents:   10000,
		Available:   true,
		MaxCapacity: 2,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, db.Create(&room).Error, "failed to seed room")
}

// seedConfirmedReservation inserts a reservation in "confirmed" state.
func seedConfirmedReservation(t *testing.T, db *gorm.DB, reservationID, clientID, roomID uuid.UUID) {
	t.Helper()
	now := time.Now().UTC()
	confirmed := now.Add(-2 * time.Hour)
	start := now.AddDate(0, 0, -1).Truncate(24 * time.Hour)
	end := start.AddDate(0, 0, 3)

	model := repository.ReservationModel{
		ID:               reservationID,
		ClientID:         clientID,
		RoomID:           roomID,
		StartDate:        start,
		EndDate:          end,
		Status:           "confirmed",
		PartySize:        2,
		NightlyRateCents: 10000,
		TotalPriceCents:  30000,
		ConfirmedAt:      &confirmed,
		Version:          2,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	require.NoError(t, db.Create(&model).Error, "failed to seed reservation")
}

// publishTestEvent publishes a CloudEvent to Kafka.
func publishTestEvent(t *testing.T, brokers []string, topic, source, eventType string, data interface{}) {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	producer := kafka.NewProducer(brokers, logger)
	defer func() { _ = producer.Close() }()

	ce, err := kafka.NewCloudEvent(source, eventType, data)
	require.NoError(t, err, "failed to create cloud event")

	err = producer.PublishEvent(context.Background(), topic, ce)
	require.NoError(t, err, "failed to publish event")
}

// waitForReservationStatus polls the reservations table until the status matches.
func waitForReservationStatus(t *testing.T, db *gorm.DB, reservationID uuid.UUID, expectedStatus string, timeout time.Duration) repository.ReservationModel {
	t.Helper()
	var result repository.ReservationModel
	require.Eventually(t, func() bool {
		var model repository.ReservationModel
		err := db.Where("id = ?", reservationID).First(&model).Error
		if err != nil {
			return false
		}
		if model.Status == expectedStatus {
			result = model
			return true
		}
		return false
	}, timeout, 200*time.Millisecond, "reservation did not transition to %s", expectedStatus)
	return result
}

// consumeOneEvent reads from a Kafka topic until it finds an event of the expected type.
func consumeOneEvent(t *testing.T, brokers []string, topic, expectedType string, timeout time.Duration) kafka.CloudEvent {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	groupID := fmt.Sprintf("test-assert-%s", uuid.New().String()[:8])
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     brokers,
		GroupID:     groupID,
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafkago.FirstOffset,
	})
	defer func() { _ = reader.Close() }()

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				t.Fatalf("timed out waiting for event type %q on topic %q", expectedType, topic)
			}
			continue
		}
		ce, err := kafka.ParseCloudEvent(msg.Value)
		if err != nil {
			continue
		}
		if ce.Type == expectedType {
			return ce
		}
	}
}

// createTopics pre-creates Kafka topics so producers don't fail with "Unknown Topic".
func createTopics(t *testing.T, brokers []string, topics ...string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", brokers[0])
	require.NoError(t, err, "failed to dial Kafka for topic creation")
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err, "failed to get Kafka controller")

	controllerConn, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, fmt.Sprintf("%d", controller.Port)))
	require.NoError(t, err, "failed to connect to Kafka controller")
	defer controllerConn.Close()

	topicConfigs := make([]kafkago.TopicConfig, len(topics))
	for i, topic := range topics {
		topicConfigs[i] = kafkago.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		}
	}
	err = controllerConn.CreateTopics(topicConfigs...)
	require.NoError(t, err, "failed to create Kafka topics")

	// Give Kafka a moment to propagate topic metadata.
	time.Sleep(1 * time.Second)
}
