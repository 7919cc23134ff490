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

// DataOffset is the difference between an I/O address and the data memory
// address of the same register.
const DataOffset = 0x20

// I/O register addresses.
const (
	TWBR   = 0x00
	TWSR   = 0x01
	TWAR   = 0x02
	TWDR   = 0x03
	ADCL   = 0x04
	ADCH   = 0x05
	ADCSRA = 0x06
	ADMUX  = 0x07
	ACSR   = 0x08
	UBRRL  = 0x09
	UCSRB  = 0x0a
	UCSRA  = 0x0b
	UDR    = 0x0c
	SPCR   = 0x0d
	SPSR   = 0x0e
	SPDR   = 0x0f
	PIND   = 0x10
	DDRD   = 0x11
	PORTD  = 0x12
	PINC   = 0x13
	DDRC   = 0x14
	PORTC  = 0x15
	PINB   = 0x16
	DDRB   = 0x17
	PORTB  = 0x18
	EECR   = 0x1c
	EEDR   = 0x1d
	EEARL  = 0x1e
	EEARH  = 0x1f
	UCSRC  = 0x20
	WDTCR  = 0x21
	ASSR   = 0x22
	OCR2   = 0x23
	TCNT2  = 0x24
	TCCR2  = 0x25
	ICR1L  = 0x26
	ICR1H  = 0x27
	OCR1BL = 0x28
	OCR1BH = 0x29
	OCR1AL = 0x2a
	OCR1AH = 0x2b
	TCNT1L = 0x2c
	TCNT1H = 0x2d
	TCCR1B = 0x2e
	TCCR1A = 0x2f
	SFIOR  = 0x30
	OSCCAL = 0x31
	TCNT0  = 0x32
	TCCR0  = 0x33
	MCUCSR = 0x34
	MCUCR  = 0x35
	TWCR   = 0x36
	SPMCR  = 0x37
	TIFR   = 0x38
	TIMSK  = 0x39
	GIFR   = 0x3a
	GICR   = 0x3b
	SPL    = 0x3d
	SPH    = 0x3e
	SREG   = 0x3f
)

// NumIO is the number of addresses in I/O space.
const NumIO = 0x40

// Bits of TIMSK and TIFR.
const (
	TOIE0  = 0
	TOIE1  = 2
	OCIE1B = 3
	OCIE1A = 4
	TICIE1 = 5
	TOIE2  = 6
	OCIE2  = 7

	TOV0  = 0
	TOV1  = 2
	OCF1B = 3
	OCF1A = 4
	ICF1  = 5
	TOV2  = 6
	OCF2  = 7
)

// Bits of MCUCR.
const (
	SE = 7
)

// Bits of TCCR2.
const (
	WGM21 = 3
	WGM20 = 6
)

// Names of the I/O registers, indexed by I/O address. Unused addresses
// have an empty name.
var Names = [NumIO]string{
	TWBR: "TWBR", TWSR: "TWSR", TWAR: "TWAR", TWDR: "TWDR",
	ADCL: "ADCL", ADCH: "ADCH", ADCSRA: "ADCSRA", ADMUX: "ADMUX",
	ACSR: "ACSR", UBRRL: "UBRRL", UCSRB: "UCSRB", UCSRA: "UCSRA",
	UDR: "UDR", SPCR: "SPCR", SPSR: "SPSR", SPDR: "SPDR",
	PIND: "PIND", DDRD: "DDRD", PORTD: "PORTD",
	PINC: "PINC", DDRC: "DDRC", PORTC: "PORTC",
	PINB: "PINB", DDRB: "DDRB", PORTB: "PORTB",
	EECR: "EECR", EEDR: "EEDR", EEARL: "EEARL", EEARH: "EEARH",
	UCSRC: "UCSRC", WDTCR: "WDTCR", ASSR: "ASSR",
	OCR2: "OCR2", TCNT2: "TCNT2", TCCR2: "TCCR2",
	ICR1L: "ICR1L", ICR1H: "ICR1H", OCR1BL: "OCR1BL", OCR1BH: "OCR1BH",
	OCR1AL: "OCR1AL", OCR1AH: "OCR1AH", TCNT1L: "TCNT1L", TCNT1H: "TCNT1H",
	TCCR1B: "TCCR1B", TCCR1A: "TCCR1A", SFIOR: "SFIOR", OSCCAL: "OSCCAL",
	TCNT0: "TCNT0", TCCR0: "TCCR0", MCUCSR: "MCUCSR", MCUCR: "MCUCR",
	TWCR: "TWCR", SPMCR: "SPMCR", TIFR: "TIFR", TIMSK: "TIMSK",
	GIFR: "GIFR", GICR: "GICR", SPL: "SPL", SPH: "SPH", SREG: "SREG",
}

// Lookup returns the I/O address of a named register.
func Lookup(name string) (uint8, bool) {
	for a, n := range Names {
		if n != "" && n == name {
			return uint8(a), true
		}
	}
	return 0, false
}
