package participantrepo_test

import (
	"context"
	"testing"
	"time"

	"servicerequest/internal/adapters/out/postgres/migrations"
	"servicerequest/internal/adapters/out/postgres/participantrepo"
	"servicerequest/internal/core/domain/model/kernel"
	"servicerequest/internal/core/domain/model/participant"
	"servicerequest/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ParticipantRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *participantrepo.GormParticipantRepository
}

func (suite *ParticipantRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	_, err = migrations.Up(ctx, sqlDB)
	suite.Require().NoError(err)
}

func (suite *ParticipantRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE participants, satellites").Error)
	suite.repository = participantrepo.NewGormParticipantRepository(suite.db)
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestAddAndLookup_Company() {
	ctx := context.Background()
	sat := kernel.MustParticipantID("ESA1")
	company := suite.newActor("ESA", participant.Company, participant.Profile{
		Name:            "European Space Agency",
		CountryOfOrigin: suite.country("FRANCE"),
		CompanyName:     "ESA",
		Satellite:       &sat,
	})

	suite.Require().NoError(suite.repository.Add(ctx, company))

	stored, err := suite.repository.Lookup(ctx, company.Ref())
	suite.Require().NoError(err)
	suite.Equal(company.Ref(), stored.Ref())
	suite.Equal("European Space Agency", stored.Name())
	suite.Equal("FRANCE", stored.CountryOfOrigin().String())
	suite.Equal("ESA", stored.CompanyName())
	suite.Require().NotNil(stored.Satellite())
	suite.Equal("ESA1", stored.Satellite().String())
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestAddAndLookup_GroundStationWithoutCountry() {
	ctx := context.Background()
	station := suite.newActor("GS1", participant.GroundStation, participant.Profile{Name: "Kiruna"})

	suite.Require().NoError(suite.repository.Add(ctx, station))

	stored, err := suite.repository.Lookup(ctx, station.Ref())
	suite.Require().NoError(err)
	suite.True(stored.CountryOfOrigin().IsZero())
	suite.Nil(stored.Satellite())
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestSameIDDifferentRoles() {
	ctx := context.Background()
	customer := suite.newActor("ESA", participant.Customer, participant.Profile{
		Name: "Esa", LastName: "Customer", CountryOfOrigin: suite.country("USA"),
	})
	company := suite.newActor("ESA", participant.Company, participant.Profile{
		Name: "European Space Agency", CountryOfOrigin: suite.country("FRANCE"),
	})

	suite.Require().NoError(suite.repository.Add(ctx, customer))
	suite.Require().NoError(suite.repository.Add(ctx, company))

	storedCustomer, err := suite.repository.Lookup(ctx, customer.Ref())
	suite.Require().NoError(err)
	suite.Equal("USA", storedCustomer.CountryOfOrigin().String())

	storedCompany, err := suite.repository.Lookup(ctx, company.Ref())
	suite.Require().NoError(err)
	suite.Equal("FRANCE", storedCompany.CountryOfOrigin().String())
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestAdd_Duplicate_Conflict() {
	ctx := context.Background()
	regulator := suite.newActor("FCC", participant.Regulator, participant.Profile{
		Name: "FCC", CountryOfOrigin: suite.country("USA"),
	})
	suite.Require().NoError(suite.repository.Add(ctx, regulator))

	err := suite.repository.Add(ctx, regulator)

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestLookup_WrongRole_NotFound() {
	ctx := context.Background()
	regulator := suite.newActor("FCC", participant.Regulator, participant.Profile{
		Name: "FCC", CountryOfOrigin: suite.country("USA"),
	})
	suite.Require().NoError(suite.repository.Add(ctx, regulator))

	_, err := suite.repository.Lookup(ctx, participant.ActorRef{ID: regulator.ID(), Role: participant.Customer})

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestSatellite_RoundTrip() {
	ctx := context.Background()
	excluded, err := kernel.NewCountries([]string{"CHINA", "RUSSIA"})
	suite.Require().NoError(err)
	sat, err := participant.NewSatellite(kernel.MustParticipantID("ESA1"), "Sentinel", excluded)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddSatellite(ctx, sat))

	stored, err := suite.repository.GetSatellite(ctx, sat.ID())
	suite.Require().NoError(err)
	suite.Equal("Sentinel", stored.Name())
	suite.Equal(excluded, stored.ExcludedCountries())

	suite.Require().ErrorIs(suite.repository.AddSatellite(ctx, sat), errs.ErrConflict)
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestSatellite_EmptyExclusionList() {
	ctx := context.Background()
	sat, err := participant.NewSatellite(kernel.MustParticipantID("OPEN1"), "Open", nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.AddSatellite(ctx, sat))

	stored, err := suite.repository.GetSatellite(ctx, sat.ID())
	suite.Require().NoError(err)
	suite.Empty(stored.ExcludedCountries())
}

func (suite *ParticipantRepositoryIntegrationTestSuite) TestGetSatellite_Missing_NotFound() {
	_, err := suite.repository.GetSatellite(context.Background(), kernel.MustParticipantID("NOPE"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParticipantRepositoryIntegrationTestSuite) newActor(id string, role participant.Role, profile participant.Profile) *participant.Actor {
	ref, err := participant.NewActorRef(kernel.MustParticipantID(id), role)
	suite.Require().NoError(err)
	actor, err := participant.NewActor(ref, profile)
	suite.Require().NoError(err)
	return actor
}

func (suite *ParticipantRepositoryIntegrationTestSuite) country(name string) kernel.Country {
	c, err := kernel.NewCountry(name)
	suite.Require().NoError(err)
	return c
}

func TestParticipantRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParticipantRepositoryIntegrationTestSuite))
}
