package roster_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/army-rater/internal/engine/scoring"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
	"github.com/KirkDiggler/army-rater/internal/orchestrators/roster"
	"github.com/KirkDiggler/army-rater/internal/pkg/idgen"
	armiesmock "github.com/KirkDiggler/army-rater/internal/repositories/armies/mock"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
	interchangemock "github.com/KirkDiggler/army-rater/internal/services/interchange/mock"
	"github.com/KirkDiggler/army-rater/internal/testutils/builders"
	"github.com/KirkDiggler/army-rater/internal/testutils/mocks"
)

// TransferTestSuite covers import and export against a mocked codec
type TransferTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *armiesmock.MockRepository
	mockCodec *interchangemock.MockCodec
	published int
	orch      roster.Service
	ctx       context.Context
}

func TestTransferSuite(t *testing.T) {
	suite.Run(t, new(TransferTestSuite))
}

func (s *TransferTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = armiesmock.NewMockRepository(s.ctrl)
	s.mockCodec = interchangemock.NewMockCodec(s.ctrl)
	s.ctx = context.Background()

	eng, err := scoring.New(nil)
	s.Require().NoError(err)

	bus := events.NewBus()
	s.published = 0
	bus.SubscribeFunc(roster.EventArmyScored, 0, func(context.Context, events.Event) error {
		s.published++
		return nil
	})

	orch, err := roster.NewOrchestrator(&roster.Config{
		Repository:  s.mockRepo,
		Engine:      eng,
		Codec:       s.mockCodec,
		EventBus:    bus,
		IDGenerator: idgen.NewSequential("army"),
	})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *TransferTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransferTestSuite) TestImportDecodeFailureNeverLoads() {
	data := []byte("- a: [")
	s.mockCodec.EXPECT().
		Decode(data, interchange.FormatYAML).
		Return(nil, errors.InvalidArgument("failed to decode yaml"))

	_, err := s.orch.ImportArmy(s.ctx, &roster.ImportArmyInput{ArmyID: "army-1", Data: data, Format: interchange.FormatYAML})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Zero(s.published)
}

func (s *TransferTestSuite) TestImportStoresDecodedUnits() {
	existing := builders.NewArmyBuilder().WithID("army-1").Build()
	decoded := []army.Unit{builders.Intercessors().WithCount(2).Build()}

	s.mockCodec.EXPECT().Decode([]byte("[]"), interchange.FormatJSON).Return(decoded, nil)
	mocks.ExpectArmyRoundTrip(s.ctx, s.mockRepo, existing)

	out, err := s.orch.ImportArmy(s.ctx, &roster.ImportArmyInput{ArmyID: "army-1", Data: []byte("[]"), Format: interchange.FormatJSON})
	s.Require().NoError(err)
	s.Require().Len(out.Army.Units, 1)
	s.Equal(160, out.Report.Score.TotalPoints)
	s.Equal(1, s.published)
}

func (s *TransferTestSuite) TestExportDefaultsToJSON() {
	existing := builders.NewArmyBuilder().WithID("army-1").WithUnits(builders.Intercessors().Build()).Build()
	mocks.ExpectArmyLoad(s.ctx, s.mockRepo, existing)
	s.mockCodec.EXPECT().
		Encode(gomock.Any(), interchange.FormatJSON).
		DoAndReturn(func(units []army.Unit, _ interchange.Format) ([]byte, error) {
			s.Require().Len(units, 1)
			s.Equal("Intercessors", units[0].Name)
			return []byte("[]"), nil
		})

	out, err := s.orch.ExportArmy(s.ctx, &roster.ExportArmyInput{ArmyID: "army-1"})
	s.Require().NoError(err)
	s.Equal(interchange.FormatJSON, out.Format)
	s.Equal([]byte("[]"), out.Data)
}

func (s *TransferTestSuite) TestExportEncodeFailure() {
	existing := builders.NewArmyBuilder().WithID("army-1").Build()
	mocks.ExpectArmyLoad(s.ctx, s.mockRepo, existing)
	s.mockCodec.EXPECT().
		Encode(gomock.Any(), interchange.FormatYAML).
		Return(nil, errors.InvalidArgument("unsupported value"))

	_, err := s.orch.ExportArmy(s.ctx, &roster.ExportArmyInput{ArmyID: "army-1", Format: interchange.FormatYAML})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "failed to export army army-1")
}
