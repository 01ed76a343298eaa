package arearepo_test

import (
	"context"
	"testing"

	"ecofleet/internal/adapters/out/postgres/arearepo"
	"ecofleet/internal/adapters/out/postgres/pgtest"
	"ecofleet/internal/core/domain/model/area"
	"ecofleet/internal/core/domain/model/kernel"
	"ecofleet/internal/pkg/errs"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/suite"
)

type AreaRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *arearepo.GormAreaRepository
}

func (suite *AreaRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), &arearepo.AreaDTO{})
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *AreaRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.DB.Exec("TRUNCATE TABLE delivery_areas").Error)
	suite.repository = arearepo.NewGormAreaRepository(suite.database.DB, pgtest.NoopTracker{})
}

func (suite *AreaRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func square(minLon, minLat, maxLon, maxLat float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minLon, minLat}, {maxLon, minLat}, {maxLon, maxLat}, {minLon, maxLat}, {minLon, minLat},
	}}
}

func (suite *AreaRepositoryIntegrationTestSuite) TestAddGet_PolygonWithHole() {
	ctx := context.Background()
	polygon := square(-46.6, -23.6, -46.5, -23.5)
	polygon = append(polygon, square(-46.56, -23.56, -46.54, -23.54)[0])
	a, err := area.NewDeliveryArea(kernel.NewUUID(), "Centro", polygon)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, a))

	stored, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal("Centro", stored.Name())
	suite.Equal(polygon, stored.Polygon())
}

func (suite *AreaRepositoryIntegrationTestSuite) TestList_OrderedByName() {
	ctx := context.Background()
	for _, name := range []string{"Zona Sul", "Centro", "Zona Leste"} {
		a, err := area.NewDeliveryArea(kernel.NewUUID(), name, square(-46.6, -23.6, -46.5, -23.5))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.Add(ctx, a))
	}

	list, err := suite.repository.List(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(list, 3)
	suite.Equal("Centro", list[0].Name())
	suite.Equal("Zona Leste", list[1].Name())
	suite.Equal("Zona Sul", list[2].Name())
}

func (suite *AreaRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AreaRepositoryIntegrationTestSuite) TestScan_RejectsNonPolygon() {
	err := suite.database.DB.Exec(
		`INSERT INTO delivery_areas (id, name, area, created_at, updated_at)
		 VALUES (?, 'Ponto', '{"type":"Point","coordinates":[-46.6,-23.5]}', now(), now())`,
		kernel.NewUUID().Bytes(),
	).Error
	suite.Require().NoError(err)

	_, err = suite.repository.List(context.Background())

	suite.Require().ErrorIs(err, arearepo.ErrNotAPolygon)
}

func TestAreaRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AreaRepositoryIntegrationTestSuite))
}
