package osrmc

import (
	"github.com/moviro-hub/libosrmc/osrm"
)

// TileParams addresses one XYZ vector tile.
type TileParams struct {
	tile *osrm.TileParameters
}

// NewTileParams returns a zero tile address.
func NewTileParams() *TileParams {
	return &TileParams{tile: osrm.NewTileParameters()}
}

// SetX sets the tile column.
func (p *TileParams) SetX(x uint32) {
	p.tile.X = x
}

// SetY sets the tile row.
func (p *TileParams) SetY(y uint32) {
	p.tile.Y = y
}

// SetZ sets the tile zoom level.
func (p *TileParams) SetZ(z uint32) {
	p.tile.Z = z
}

// Tile renders one vector tile. Unlike the document services the result
// union is seeded with an empty byte string; on failure the engine may still
// have replaced it with an error document, and both shapes are translated.
func (o *OSRM) Tile(params *TileParams) (resp *TileResponse, err error) {
	defer guard(&err)

	if err := o.checkEngine(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, newError(CodeInvalidArgument, "Tile parameters cannot be null")
	}
	result := osrm.NewBufferResult()
	if err := translateStatus("Tile", o.engine.Tile(params.tile, result), result); err != nil {
		return nil, err
	}
	data, ok := result.Buffer()
	if !ok {
		return nil, newError(CodeException, "tile result does not hold bytes")
	}
	return &TileResponse{data: data}, nil
}

// TileResponse owns the bytes of one rendered tile.
type TileResponse struct {
	data []byte
}

// Data returns the tile bytes. The slice aliases the response's storage and
// stays valid for the life of the response.
func (r *TileResponse) Data() []byte {
	return r.data
}

// Size returns the tile byte count.
func (r *TileResponse) Size() int {
	return len(r.data)
}
