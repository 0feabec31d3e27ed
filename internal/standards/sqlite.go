package standards

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/BMadhushan18/boq-engine/internal/model"
)

// DB is the SQLite-backed standards database.
type DB struct {
	db *sql.DB
}

// OpenDB opens the standards database at the given path and configures WAL
// mode.
func OpenDB(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "standards: open sqlite")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "standards: exec %s", pragma)
		}
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

const migration = `
CREATE TABLE IF NOT EXISTS room_standards (
	room_type    TEXT PRIMARY KEY,
	min_area_sqm REAL NOT NULL,
	min_length_m REAL NOT NULL,
	min_width_m  REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS material_standards (
	material            TEXT PRIMARY KEY,
	coverage_rate       REAL NOT NULL,
	coats               INTEGER NOT NULL,
	wastage             REAL NOT NULL,
	unit_price_lkr      REAL NOT NULL,
	tile_size_mm        TEXT,
	tile_area_sqm       REAL,
	adhesive_kg_per_sqm REAL,
	grout_kg_per_sqm    REAL
);
`

// Migrate creates the standards tables if they do not exist.
func (d *DB) Migrate(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "standards: migrate")
}

// Seed writes the given standards into the database, replacing existing rows.
func (d *DB) Seed(ctx context.Context, s *Standards) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "standards: begin seed tx")
	}
	defer tx.Rollback()

	for roomType, std := range s.Rooms {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO room_standards (room_type, min_area_sqm, min_length_m, min_width_m) VALUES (?, ?, ?, ?)`,
			string(roomType), std.MinAreaSqm, std.MinLengthM, std.MinWidthM,
		)
		if err != nil {
			return eris.Wrapf(err, "standards: seed room %s", roomType)
		}
	}

	type matRow struct {
		name     string
		coverage float64
		coats    int
		wastage  float64
		price    float64
		size     sql.NullString
		area     sql.NullFloat64
		adhesive sql.NullFloat64
		grout    sql.NullFloat64
	}
	mats := []matRow{
		{name: "paint", coverage: s.Materials.Paint.CoverageSqmPerLiter, coats: s.Materials.Paint.Coats,
			wastage: s.Materials.Paint.Wastage, price: s.Materials.Paint.PriceLKRPerLiter},
		{name: "putty", coverage: s.Materials.Putty.CoverageSqmPerKg, coats: s.Materials.Putty.Coats,
			wastage: s.Materials.Putty.Wastage, price: s.Materials.Putty.PriceLKRPerKg},
		{name: "floor_tile", coverage: 0, coats: 1, wastage: s.Materials.FloorTile.Wastage,
			price: s.Materials.FloorTile.PriceLKRPerSqm,
			size:  sql.NullString{String: s.Materials.FloorTile.SizeMM, Valid: true},
			area:  sql.NullFloat64{Float64: s.Materials.FloorTile.TileAreaSqm, Valid: true},
			adhesive: sql.NullFloat64{Float64: s.Materials.FloorTile.AdhesiveKgSqm, Valid: true},
			grout:    sql.NullFloat64{Float64: s.Materials.FloorTile.GroutKgSqm, Valid: true}},
		{name: "wall_tile", coverage: 0, coats: 1, wastage: s.Materials.WallTile.Wastage,
			price: s.Materials.WallTile.PriceLKRPerSqm,
			size:  sql.NullString{String: s.Materials.WallTile.SizeMM, Valid: true},
			area:  sql.NullFloat64{Float64: s.Materials.WallTile.TileAreaSqm, Valid: true},
			adhesive: sql.NullFloat64{Float64: s.Materials.WallTile.AdhesiveKgSqm, Valid: true},
			grout:    sql.NullFloat64{Float64: s.Materials.WallTile.GroutKgSqm, Valid: true}},
	}
	for _, m := range mats {
		_, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO material_standards
			 (material, coverage_rate, coats, wastage, unit_price_lkr, tile_size_mm, tile_area_sqm, adhesive_kg_per_sqm, grout_kg_per_sqm)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.name, m.coverage, m.coats, m.wastage, m.price, m.size, m.area, m.adhesive, m.grout,
		)
		if err != nil {
			return eris.Wrapf(err, "standards: seed material %s", m.name)
		}
	}

	return eris.Wrap(tx.Commit(), "standards: commit seed")
}

// Load reads the full standards set from the database. Missing material rows
// fall back to the built-in defaults so a partially seeded database still
// yields a usable repository.
func (d *DB) Load(ctx context.Context) (*Standards, error) {
	s := Defaults()
	s.Rooms = make(map[model.RoomType]RoomStandard)

	rows, err := d.db.QueryContext(ctx,
		`SELECT room_type, min_area_sqm, min_length_m, min_width_m FROM room_standards`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "standards: query room_standards")
	}
	defer rows.Close()

	for rows.Next() {
		var roomType string
		var std RoomStandard
		if err := rows.Scan(&roomType, &std.MinAreaSqm, &std.MinLengthM, &std.MinWidthM); err != nil {
			return nil, eris.Wrap(err, "standards: scan room standard")
		}
		s.Rooms[model.RoomType(roomType)] = std
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "standards: iterate room_standards")
	}

	mrows, err := d.db.QueryContext(ctx,
		`SELECT material, coverage_rate, coats, wastage, unit_price_lkr, tile_size_mm, tile_area_sqm, adhesive_kg_per_sqm, grout_kg_per_sqm
		 FROM material_standards`,
	)
	if err != nil {
		return nil, eris.Wrap(err, "standards: query material_standards")
	}
	defer mrows.Close()

	for mrows.Next() {
		var name string
		var coverage, wastage, price float64
		var coats int
		var size sql.NullString
		var area, adhesive, grout sql.NullFloat64
		if err := mrows.Scan(&name, &coverage, &coats, &wastage, &price, &size, &area, &adhesive, &grout); err != nil {
			return nil, eris.Wrap(err, "standards: scan material standard")
		}
		switch name {
		case "paint":
			s.Materials.Paint = PaintStandard{CoverageSqmPerLiter: coverage, Coats: coats, Wastage: wastage, PriceLKRPerLiter: price}
		case "putty":
			s.Materials.Putty = PuttyStandard{CoverageSqmPerKg: coverage, Coats: coats, Wastage: wastage, PriceLKRPerKg: price}
		case "floor_tile":
			s.Materials.FloorTile = tileFromRow(wastage, price, size, area, adhesive, grout)
		case "wall_tile":
			s.Materials.WallTile = tileFromRow(wastage, price, size, area, adhesive, grout)
		}
	}
	if err := mrows.Err(); err != nil {
		return nil, eris.Wrap(err, "standards: iterate material_standards")
	}

	return s, nil
}

func tileFromRow(wastage, price float64, size sql.NullString, area, adhesive, grout sql.NullFloat64) TileStandard {
	return TileStandard{
		SizeMM:         size.String,
		TileAreaSqm:    area.Float64,
		Wastage:        wastage,
		PriceLKRPerSqm: price,
		AdhesiveKgSqm:  adhesive.Float64,
		GroutKgSqm:     grout.Float64,
	}
}
