package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/army-rater/internal/engine/scoring"
	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/errors"
	"github.com/KirkDiggler/army-rater/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/army-rater/internal/orchestrators/roster"
	"github.com/KirkDiggler/army-rater/internal/pkg/idgen"
	"github.com/KirkDiggler/army-rater/internal/repositories/armies"
	"github.com/KirkDiggler/army-rater/internal/services/interchange"
	"github.com/KirkDiggler/army-rater/internal/testutils/builders"
)

// GRPCTestSuite runs the service over an in-process connection
type GRPCTestSuite struct {
	suite.Suite
	server *grpc.Server
	conn   *grpc.ClientConn
	client v1alpha1.ArmyServiceClient
	ctx    context.Context
}

func TestGRPCTestSuite(t *testing.T) {
	suite.Run(t, new(GRPCTestSuite))
}

func (s *GRPCTestSuite) SetupTest() {
	s.ctx = context.Background()

	eng, err := scoring.New(nil)
	s.Require().NoError(err)
	orch, err := roster.NewOrchestrator(&roster.Config{
		Repository:  armies.NewInMemory(),
		Engine:      eng,
		Codec:       interchange.New(),
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewSequential("army"),
	})
	s.Require().NoError(err)
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{RosterService: orch})
	s.Require().NoError(err)

	lis := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	v1alpha1.RegisterArmyServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewArmyServiceClient(conn)
}

func (s *GRPCTestSuite) TearDownTest() {
	_ = s.conn.Close()
	s.server.Stop()
}

type armyReply struct {
	Army   army.Army `json:"army"`
	Report struct {
		Score struct {
			TotalPoints int `json:"total_points"`
		} `json:"score"`
	} `json:"report"`
}

func (s *GRPCTestSuite) call(method string, m map[string]any, out any) error {
	req, err := structpb.NewStruct(m)
	s.Require().NoError(err)
	resp, err := s.client.Call(s.ctx, method, req)
	if err != nil {
		return errors.FromGRPCError(err)
	}
	return v1alpha1.FromStruct(resp, out)
}

func (s *GRPCTestSuite) TestArmyLifecycle() {
	var created armyReply
	s.Require().NoError(s.call(v1alpha1.MethodCreateArmy, map[string]any{"name": "Strike Force"}, &created))
	s.Equal("army_1", created.Army.ID)
	s.Equal(army.DefaultGameSize, created.Army.GameSize)

	unit, err := interchange.UnitToMap(builders.Intercessors().WithCount(2).Build())
	s.Require().NoError(err)

	var put armyReply
	s.Require().NoError(s.call(v1alpha1.MethodPutUnit, map[string]any{
		"army_id": created.Army.ID,
		"unit":    unit,
	}, &put))
	s.Require().Len(put.Army.Units, 1)
	s.Equal(160, put.Report.Score.TotalPoints)

	var got armyReply
	s.Require().NoError(s.call(v1alpha1.MethodGetArmy, map[string]any{"army_id": created.Army.ID}, &got))
	s.Equal(put.Army.Units, got.Army.Units)

	var exported struct {
		Data   string `json:"data"`
		Format string `json:"format"`
	}
	s.Require().NoError(s.call(v1alpha1.MethodExportArmy, map[string]any{"army_id": created.Army.ID}, &exported))
	s.Equal("json", exported.Format)

	var imported armyReply
	s.Require().NoError(s.call(v1alpha1.MethodImportArmy, map[string]any{
		"army_id": created.Army.ID,
		"data":    exported.Data,
	}, &imported))
	s.Equal(got.Army.Units, imported.Army.Units)

	s.Require().NoError(s.call(v1alpha1.MethodDeleteArmy, map[string]any{"army_id": created.Army.ID}, &struct{}{}))

	err = s.call(v1alpha1.MethodGetArmy, map[string]any{"army_id": created.Army.ID}, &got)
	s.True(errors.IsNotFound(err))
	s.Equal(created.Army.ID, errors.GetMeta(err)["army_id"])
}

func (s *GRPCTestSuite) TestValidationDetailsSurvive() {
	err := s.call(v1alpha1.MethodGetThresholds, map[string]any{"game_size": -10}, &struct{}{})
	s.Require().True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)[errors.MetaValidationErrors].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "game_size")
}

func (s *GRPCTestSuite) TestUnknownMethod() {
	_, err := s.client.Call(s.ctx, "Teleport", &structpb.Struct{})
	s.Error(err)
}
