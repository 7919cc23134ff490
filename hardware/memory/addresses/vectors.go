// This file is part of avrsim.
//
// avrsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// avrsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with avrsim.  If not, see <https://www.gnu.org/licenses/>.
package addresses

// Interrupt vectors as word addresses. Each vector is a single word, which
// is room for an RJMP to the handler.
const (
	RESET        = 0x0000
	INT0         = 0x0001
	INT1         = 0x0002
	TIMER2_COMP  = 0x0003
	TIMER2_OVF   = 0x0004
	TIMER1_CAPT  = 0x0005
	TIMER1_COMPA = 0x0006
	TIMER1_COMPB = 0x0007
	TIMER1_OVF   = 0x0008
	TIMER0_OVF   = 0x0009
	SPI_STC      = 0x000a
	USART_RXC    = 0x000b
	USART_UDRE   = 0x000c
	USART_TXC    = 0x000d
	ADC          = 0x000e
	EE_RDY       = 0x000f
	ANA_COMP     = 0x0010
	TWI          = 0x0011
	SPM_RDY      = 0x0012
)

// NumVectors is the size of the vector table.
const NumVectors = 19

// VectorNames is indexed by the word address of the vector.
var VectorNames = [NumVectors]string{
	"RESET", "INT0", "INT1", "TIMER2_COMP", "TIMER2_OVF",
	"TIMER1_CAPT", "TIMER1_COMPA", "TIMER1_COMPB", "TIMER1_OVF", "TIMER0_OVF",
	"SPI_STC", "USART_RXC", "USART_UDRE", "USART_TXC", "ADC",
	"EE_RDY", "ANA_COMP", "TWI", "SPM_RDY",
}
