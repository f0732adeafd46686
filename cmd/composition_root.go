package cmd

import (
	"errors"
	"log/slog"
	"net/http"

	cargohttp "cargo/internal/adapters/in/http"
	"cargo/internal/adapters/out/auth"
	"cargo/internal/adapters/out/kafka"
	"cargo/internal/adapters/out/notify"
	"cargo/internal/adapters/out/postgres"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	registry   *prometheus.Registry

	hasher    auth.BcryptHasher
	tokens    *auth.JWTService
	notifier  ports.Notifier
	publisher ports.EventPublisher

	closers []func() error
}

// NewCompositionRoot builds the outbound adapters selected by configs. The
// caller must Close the root to release broker connections.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	tokens, err := auth.NewJWTService(configs.JWTSecret, configs.JWTIssuer, configs.JWTAudience, configs.JWTTTL)
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		registry:   registry,
		hasher:     auth.NewBcryptHasher(bcrypt.DefaultCost),
		tokens:     tokens,
	}

	if err = c.buildNotifier(); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err = c.buildPublisher(); err != nil {
		_ = c.Close()
		return nil, err
	}

	return c, nil
}

func (c *CompositionRoot) buildNotifier() error {
	var notifier ports.Notifier
	switch c.configs.Notifier {
	case NotifierTelegram:
		telegram, err := notify.NewTelegramNotifier(&http.Client{}, c.configs.TelegramAPIURL, c.configs.TelegramBotToken)
		if err != nil {
			return err
		}
		notifier = telegram
	case NotifierRabbitMQ:
		rabbit, err := notify.DialRabbitMQNotifier(c.configs.RabbitMQURL, c.configs.RabbitMQQueue)
		if err != nil {
			return err
		}
		c.closers = append(c.closers, rabbit.Close)
		notifier = rabbit
	default:
		notifier = notify.NewLogNotifier(c.logger)
	}

	instrumented, err := notify.NewInstrumentedNotifier(notifier, c.registry, c.configs.Notifier)
	if err != nil {
		return err
	}
	c.notifier = instrumented
	return nil
}

// buildPublisher leaves the publisher unset when no Kafka broker is configured.
func (c *CompositionRoot) buildPublisher() error {
	if c.configs.KafkaHost == "" {
		return nil
	}

	publisher, err := kafka.NewShipmentStatusPublisher(c.configs.KafkaHost, c.configs.KafkaShipmentStatusTopic, c.logger)
	if err != nil {
		return err
	}
	c.closers = append(c.closers, publisher.Close)
	c.publisher = publisher
	return nil
}

func (c *CompositionRoot) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errs = append(errs, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errs...)
}

func (c *CompositionRoot) Registry() *prometheus.Registry {
	return c.registry
}

func (c *CompositionRoot) TokenVerifier() ports.TokenVerifier {
	return c.tokens
}

func (c *CompositionRoot) clientUoWFactory() commands.ClientUoWFactory {
	return FuncClientUoWFactory(func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cargoUoWFactory() commands.CargoUoWFactory {
	return FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.userUoWFactory(), c.hasher, c.tokens)
}

// NewSeedUsersCommandHandler serves the seed CLI command, which needs no
// broker connections.
func NewSeedUsersCommandHandler(gormDB *gorm.DB) commands.SeedUsersCommandHandler {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)
	return commands.NewSeedUsersCommandHandler(
		FuncUserUoWFactory(func() commands.UserUoW { return uowFactory.Create() }),
		auth.NewBcryptHasher(bcrypt.DefaultCost),
	)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() commands.RegisterClientCommandHandler {
	return commands.NewRegisterClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateUpdateClientCommandHandler() commands.UpdateClientCommandHandler {
	return commands.NewUpdateClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateDeleteClientCommandHandler() commands.DeleteClientCommandHandler {
	return commands.NewDeleteClientCommandHandler(c.clientUoWFactory())
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.cargoUoWFactory())
}

func (c *CompositionRoot) CreateUpdateParcelCommandHandler() commands.UpdateParcelCommandHandler {
	return commands.NewUpdateParcelCommandHandler(c.cargoUoWFactory())
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.cargoUoWFactory())
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.cargoUoWFactory())
}

func (c *CompositionRoot) CreateReplaceShipmentMembersCommandHandler() commands.ReplaceShipmentMembersCommandHandler {
	return commands.NewReplaceShipmentMembersCommandHandler(c.cargoUoWFactory())
}

func (c *CompositionRoot) CreateAssignParcelCommandHandler() commands.AssignParcelCommandHandler {
	return commands.NewAssignParcelCommandHandler(c.cargoUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceShipmentStatusCommandHandler() commands.AdvanceShipmentStatusCommandHandler {
	return commands.NewAdvanceShipmentStatusCommandHandler(
		c.cargoUoWFactory(),
		c.notifier,
		c.publisher,
		c.configs.NotifyTimeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRecomputeShipmentTotalsCommandHandler() commands.RecomputeShipmentTotalsCommandHandler {
	return commands.NewRecomputeShipmentTotalsCommandHandler(c.cargoUoWFactory())
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.cargoUoWFactory())
}

// HTTPHandlers collects every use case served by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() cargohttp.Handlers {
	login := c.CreateLoginCommandHandler()
	registerClient := c.CreateRegisterClientCommandHandler()
	updateClient := c.CreateUpdateClientCommandHandler()
	deleteClient := c.CreateDeleteClientCommandHandler()
	createParcel := c.CreateCreateParcelCommandHandler()
	updateParcel := c.CreateUpdateParcelCommandHandler()
	deleteParcel := c.CreateDeleteParcelCommandHandler()
	createShipment := c.CreateCreateShipmentCommandHandler()
	replaceMembers := c.CreateReplaceShipmentMembersCommandHandler()
	assignParcel := c.CreateAssignParcelCommandHandler()
	advanceStatus := c.CreateAdvanceShipmentStatusCommandHandler()
	recompute := c.CreateRecomputeShipmentTotalsCommandHandler()
	deleteShipment := c.CreateDeleteShipmentCommandHandler()
	createUser := c.CreateCreateUserCommandHandler()
	deleteUser := c.CreateDeleteUserCommandHandler()

	return cargohttp.Handlers{
		Login:                   &login,
		RegisterClient:          &registerClient,
		UpdateClient:            &updateClient,
		DeleteClient:            &deleteClient,
		CreateParcel:            &createParcel,
		UpdateParcel:            &updateParcel,
		DeleteParcel:            &deleteParcel,
		CreateShipment:          &createShipment,
		ReplaceShipmentMembers:  &replaceMembers,
		AssignParcel:            &assignParcel,
		AdvanceShipmentStatus:   &advanceStatus,
		RecomputeShipmentTotals: &recompute,
		DeleteShipment:          &deleteShipment,
		CreateUser:              &createUser,
		DeleteUser:              &deleteUser,

		ListClients:   queries.NewListClientsQueryHandler(c.gormDB),
		GetClient:     queries.NewGetClientQueryHandler(c.gormDB),
		ListParcels:   queries.NewListParcelsQueryHandler(c.gormDB),
		GetParcel:     queries.NewGetParcelQueryHandler(c.gormDB),
		ListShipments: queries.NewListShipmentsQueryHandler(c.gormDB),
		GetShipment:   queries.NewGetShipmentQueryHandler(c.gormDB),
		ListUsers:     queries.NewListUsersQueryHandler(c.gormDB),
	}
}

type FuncClientUoWFactory func() commands.ClientUoW

func (f FuncClientUoWFactory) Create() commands.ClientUoW {
	return f()
}

type FuncCargoUoWFactory func() commands.CargoUoW

func (f FuncCargoUoWFactory) Create() commands.CargoUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
