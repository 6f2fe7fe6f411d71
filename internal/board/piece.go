package board

import "fmt"

// Color represents the color of a piece.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// char returns the code prefix for the color ('w' or 'b').
func (c Color) char() byte {
	if c == Black {
		return 'b'
	}
	return 'w'
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Pawns are lowercase in piece codes, everything else uppercase.
var typeChars = [6]byte{'p', 'N', 'B', 'R', 'Q', 'K'}

// Piece combines PieceType and Color into a single value.
// Encoded as: pieceType + color*6
type Piece uint8

const (
	WhitePawn   Piece = Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = Piece(King) + Piece(White)*6
	BlackPawn   Piece = Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = Piece(King) + Piece(Black)*6
	NoPiece     Piece = 12
)

// EmptyCode is the code written for an empty cell.
const EmptyCode = "--"

// AllPieces lists every real piece, white first.
var AllPieces = []Piece{
	WhitePawn, WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing,
	BlackPawn, BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing,
}

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// Code returns the two-character piece code, e.g. "wp" or "bK".
// Empty cells return EmptyCode.
func (p Piece) Code() string {
	if p >= NoPiece {
		return EmptyCode
	}
	return string([]byte{p.Color().char(), typeChars[p.Type()]})
}

// String returns the piece code.
func (p Piece) String() string {
	return p.Code()
}

// ParseCode converts a piece code back into a Piece.
// EmptyCode parses to NoPiece.
func ParseCode(code string) (Piece, error) {
	if code == EmptyCode {
		return NoPiece, nil
	}
	if len(code) != 2 {
		return NoPiece, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}

	var c Color
	switch code[0] {
	case 'w':
		c = White
	case 'b':
		c = Black
	default:
		return NoPiece, fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}

	for pt, ch := range typeChars {
		if code[1] == ch {
			return NewPiece(PieceType(pt), c), nil
		}
	}
	return NoPiece, fmt.Errorf("%w: %q", ErrInvalidCode, code)
}

// pieceFromFENChar converts a FEN placement character to a Piece.
func pieceFromFENChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// fenChar returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) fenChar() byte {
	if p >= NoPiece {
		return ' '
	}
	return "PNBRQKpnbrqk"[p]
}
