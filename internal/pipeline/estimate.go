// Package pipeline orchestrates the three estimation stages: source
// payloads are normalized to measurements, measurements are fused into
// rooms, and rooms are priced into a bill of quantities.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BMadhushan18/boq-engine/internal/boq"
	"github.com/BMadhushan18/boq-engine/internal/fusion"
	"github.com/BMadhushan18/boq-engine/internal/model"
	"github.com/BMadhushan18/boq-engine/internal/normalize"
	"github.com/BMadhushan18/boq-engine/internal/standards"
	"github.com/BMadhushan18/boq-engine/internal/voice"
)

// maxRoomConcurrency bounds the per-room BOQ workers.
const maxRoomConcurrency = 8

// Pipeline runs estimation requests end to end. Safe for concurrent
// use; the standards table is read-only after construction.
type Pipeline struct {
	engine *fusion.Engine
	calc   *boq.Calculator
}

func New(std *standards.Standards) *Pipeline {
	return &Pipeline{
		engine: fusion.NewEngine(std),
		calc:   boq.NewCalculator(std),
	}
}

// Run fuses all provided source payloads and generates the bill of
// quantities. A request with no source payloads at all is an error;
// individual missing sources are tolerated.
func (p *Pipeline) Run(ctx context.Context, req model.EstimateRequest) (*model.EstimateResult, error) {
	log := zap.L().With(zap.String("building", req.BuildingName))

	measurements, hints := p.normalizeSources(req)
	if len(measurements) == 0 {
		return nil, eris.New("pipeline: no data sources provided")
	}
	log.Info("pipeline: sources normalized", zap.Int("measurements", len(measurements)))

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "pipeline: cancelled before fusion")
	}

	rooms, meta := p.engine.Fuse(measurements, hints)
	log.Info("pipeline: rooms fused",
		zap.Int("rooms", len(rooms)),
		zap.Float64("overall_confidence", meta.OverallConfidence),
	)

	buildingID := req.BuildingID
	if buildingID == "" {
		buildingID = uuid.NewString()
	}

	building := model.Building{
		ID:    buildingID,
		Name:  req.BuildingName,
		Rooms: rooms,
	}
	building.TotalRooms = len(rooms)
	for _, room := range rooms {
		building.TotalFloorAreaSqm += room.Dimensions.AreaSqm
	}

	bills, err := p.roomBills(ctx, rooms)
	if err != nil {
		return nil, err
	}
	bill := boq.Assemble(building.ID, building.Name, bills)

	log.Info("pipeline: estimate complete",
		zap.String("building_id", building.ID),
		zap.Int("rooms", building.TotalRooms),
		zap.Float64("total_cost_lkr", bill.Summary.TotalEstimatedCostLKR),
	)

	return &model.EstimateResult{
		Success:        true,
		Building:       building,
		BOQ:            bill,
		FusionMetadata: meta,
	}, nil
}

// normalizeSources converts every present source payload. Source order
// is fixed so repeated runs see measurements in the same order.
func (p *Pipeline) normalizeSources(req model.EstimateRequest) ([]model.Measurement, map[string]model.RoomType) {
	var measurements []model.Measurement
	hints := make(map[string]model.RoomType)

	if req.FloorPlan != nil {
		measurements = append(measurements, normalize.FloorPlan(*req.FloorPlan, 0)...)
		for _, room := range req.FloorPlan.Rooms {
			addHint(hints, room.Name, room.Type)
		}
	}
	if len(req.AR) > 0 {
		measurements = append(measurements, normalize.ARPlanes(req.AR)...)
	}
	if req.Voice != nil && req.Voice.Text != "" {
		extracted := voice.Extract(req.Voice.Text)
		measurements = append(measurements, normalize.Voice(extracted.Rooms)...)
		for _, room := range extracted.Rooms {
			addHint(hints, room.Name, room.Type)
		}
	}
	if req.Photo != nil {
		measurements = append(measurements, normalize.Photo(*req.Photo)...)
		for _, room := range req.Photo.Rooms {
			addHint(hints, room.Name, room.Type)
		}
	}
	return measurements, hints
}

// roomBills prices rooms concurrently. Results land in input order.
func (p *Pipeline) roomBills(ctx context.Context, rooms []model.FusedRoom) ([]model.RoomBOQ, error) {
	bills := make([]model.RoomBOQ, len(rooms))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxRoomConcurrency)
	for i, room := range rooms {
		i, room := i, room
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			bills[i] = p.calc.Room(room)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "pipeline: room pricing")
	}
	return bills, nil
}

func addHint(hints map[string]model.RoomType, name, rawType string) {
	if rawType == "" {
		return
	}
	key := model.RoomKeyFor(name)
	if _, ok := hints[key]; ok {
		return
	}
	hints[key] = model.ParseRoomType(rawType, name)
}
