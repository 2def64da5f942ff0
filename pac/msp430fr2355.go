// Package pac describes the MSP430FR2355 register blocks used by the HAL.
// Layouts mirror the memory map so that, on embedded builds, each block can be
// overlaid on its peripheral base address. On host builds the same layouts are
// backed by simulated memory.
package pac

// Peripheral base addresses.
const (
	SFR_BASE       = 0x0100
	PMM_BASE       = 0x0120
	CS_BASE        = 0x0180
	WDT_A_BASE     = 0x01CC
	PA_BASE        = 0x0200 // P1, P2
	PB_BASE        = 0x0220 // P3, P4
	PC_BASE        = 0x0240 // P5, P6
	TB0_BASE       = 0x0380
	E_USCI_A1_BASE = 0x0580
)

// ---------------------------------------------------------------------------
// SFR

type SFR_Type struct {
	SFRIE1  Register16 // 0x00
	SFRIFG1 Register16 // 0x02
	SFRRPCR Register16 // 0x04
}

const (
	SFR_SFRIFG1_WDTIFG = 0x0001
)

// ---------------------------------------------------------------------------
// PMM

type PMM_Type struct {
	PMMCTL0 Register16 // 0x00
	PMMCTL1 Register16 // 0x02
	PMMCTL2 Register16 // 0x04
	_       [4]byte
	PMMIFG  Register16 // 0x0A
	_       [4]byte
	PM5CTL0 Register16 // 0x10
}

const (
	PMM_PM5CTL0_LOCKLPM5 = 0x0001
)

// ---------------------------------------------------------------------------
// CS

type CS_Type struct {
	CSCTL0 Register16 // 0x00
	CSCTL1 Register16 // 0x02
	CSCTL2 Register16 // 0x04
	CSCTL3 Register16 // 0x06
	CSCTL4 Register16 // 0x08
	CSCTL5 Register16 // 0x0A
	CSCTL6 Register16 // 0x0C
	CSCTL7 Register16 // 0x0E
	CSCTL8 Register16 // 0x10
}

const (
	// CSCTL1
	CS_CSCTL1_DISMOD      = 0x0001
	CS_CSCTL1_DCORSEL_Pos = 1
	CS_CSCTL1_DCORSEL_Msk = 0x000E

	// CSCTL2
	CS_CSCTL2_FLLN_Pos = 0
	CS_CSCTL2_FLLN_Msk = 0x03FF
	CS_CSCTL2_FLLD_Pos = 12
	CS_CSCTL2_FLLD_Msk = 0x7000
	CS_CSCTL2_FLLD_1   = 0x0000

	// CSCTL3
	CS_CSCTL3_SELREF_Pos     = 4
	CS_CSCTL3_SELREF_Msk     = 0x0030
	CS_CSCTL3_SELREF_XT1CLK  = 0x0000
	CS_CSCTL3_SELREF_REFOCLK = 0x0010

	// CSCTL4
	CS_CSCTL4_SELMS_Pos       = 0
	CS_CSCTL4_SELMS_Msk       = 0x0007
	CS_CSCTL4_SELMS_DCOCLKDIV = 0x0000
	CS_CSCTL4_SELMS_REFOCLK   = 0x0001
	CS_CSCTL4_SELMS_XT1CLK    = 0x0002
	CS_CSCTL4_SELMS_VLOCLK    = 0x0003
	CS_CSCTL4_SELA_Pos        = 8
	CS_CSCTL4_SELA_Msk        = 0x0300
	CS_CSCTL4_SELA_XT1CLK     = 0x0000
	CS_CSCTL4_SELA_REFOCLK    = 0x0100
	CS_CSCTL4_SELA_VLOCLK     = 0x0200

	// CSCTL5
	CS_CSCTL5_DIVM_Pos   = 0
	CS_CSCTL5_DIVM_Msk   = 0x0007
	CS_CSCTL5_DIVS_Pos   = 4
	CS_CSCTL5_DIVS_Msk   = 0x0030
	CS_CSCTL5_SMCLKOFF   = 0x0100
	CS_CSCTL5_VLOAUTOOFF = 0x1000

	// CSCTL7
	CS_CSCTL7_DCOFFG        = 0x0001
	CS_CSCTL7_FLLUNLOCK_Pos = 4
	CS_CSCTL7_FLLUNLOCK_Msk = 0x0030
)

// ---------------------------------------------------------------------------
// WDT_A

type WDT_A_Type struct {
	WDTCTL Register16 // 0x00
}

const (
	WDT_A_WDTCTL_WDTPW          = 0x5A00
	WDT_A_WDTCTL_WDTPW_Msk      = 0xFF00
	WDT_A_WDTCTL_WDTHOLD        = 0x0080
	WDT_A_WDTCTL_WDTSSEL_Pos    = 5
	WDT_A_WDTCTL_WDTSSEL_Msk    = 0x0060
	WDT_A_WDTCTL_WDTSSEL_SMCLK  = 0x0000
	WDT_A_WDTCTL_WDTSSEL_ACLK   = 0x0020
	WDT_A_WDTCTL_WDTSSEL_VLOCLK = 0x0040
	WDT_A_WDTCTL_WDTTMSEL       = 0x0010
	WDT_A_WDTCTL_WDTCNTCL       = 0x0008
	WDT_A_WDTCTL_WDTIS_Pos      = 0
	WDT_A_WDTCTL_WDTIS_Msk      = 0x0007
)

// ---------------------------------------------------------------------------
// Digital I/O
//
// Ports are paired: odd ports use the low byte and even ports the high byte
// of each 16-bit slot (P1/P2 share PA, P3/P4 share PB, P5/P6 share PC).

type PortPair_Type struct {
	IN   [2]Register8 // 0x00
	OUT  [2]Register8 // 0x02
	DIR  [2]Register8 // 0x04
	REN  [2]Register8 // 0x06
	_    [2]byte
	SEL0 [2]Register8 // 0x0A
	SEL1 [2]Register8 // 0x0C
	IVL  Register16   // 0x0E, odd port interrupt vector
	_    [6]byte
	SELC [2]Register8 // 0x16
	IES  [2]Register8 // 0x18
	IE   [2]Register8 // 0x1A
	IFG  [2]Register8 // 0x1C
	IVH  Register16   // 0x1E, even port interrupt vector
}

// Port is one 8-bit port view into a PortPair_Type.
type Port struct {
	Num   uint8 // 1..6
	Lines uint8 // bonded lines, starting at bit 0

	IN, OUT, DIR, REN *Register8
	SEL0, SEL1, SELC  *Register8
	IES, IE, IFG      *Register8 // nil on ports without interrupt logic
}

func newPort(pair *PortPair_Type, num, lines uint8, intr bool) *Port {
	i := (num - 1) & 1
	p := &Port{
		Num:   num,
		Lines: lines,
		IN:    &pair.IN[i],
		OUT:   &pair.OUT[i],
		DIR:   &pair.DIR[i],
		REN:   &pair.REN[i],
		SEL0:  &pair.SEL0[i],
		SEL1:  &pair.SEL1[i],
		SELC:  &pair.SELC[i],
	}
	if intr {
		p.IES = &pair.IES[i]
		p.IE = &pair.IE[i]
		p.IFG = &pair.IFG[i]
	}
	return p
}

// HasInterrupts reports whether the port has edge interrupt logic.
func (p *Port) HasInterrupts() bool { return p.IE != nil }

// Mask returns the bit mask covering every bonded line.
func (p *Port) Mask() uint8 { return uint8(uint16(1)<<p.Lines - 1) }

// ---------------------------------------------------------------------------
// TB0

type TB0_Type struct {
	TB0CTL  Register16    // 0x00
	TB0CCTL [3]Register16 // 0x02..0x06
	_       [8]byte
	TB0R    Register16    // 0x10
	TB0CCR  [3]Register16 // 0x12..0x16
	_       [8]byte
	TB0EX0  Register16 // 0x20
	_       [12]byte
	TB0IV   Register16 // 0x2E
}

const (
	// TB0CTL
	TB0_TB0CTL_TBIFG         = 0x0001
	TB0_TB0CTL_TBIE          = 0x0002
	TB0_TB0CTL_TBCLR         = 0x0004
	TB0_TB0CTL_MC_Pos        = 4
	TB0_TB0CTL_MC_Msk        = 0x0030
	TB0_TB0CTL_MC_STOP       = 0x0000
	TB0_TB0CTL_MC_UP         = 0x0010
	TB0_TB0CTL_MC_CONTINUOUS = 0x0020
	TB0_TB0CTL_MC_UPDOWN     = 0x0030
	TB0_TB0CTL_ID_Pos        = 6
	TB0_TB0CTL_ID_Msk        = 0x00C0
	TB0_TB0CTL_TBSSEL_Pos    = 8
	TB0_TB0CTL_TBSSEL_Msk    = 0x0300
	TB0_TB0CTL_TBSSEL_TBCLK  = 0x0000
	TB0_TB0CTL_TBSSEL_ACLK   = 0x0100
	TB0_TB0CTL_TBSSEL_SMCLK  = 0x0200
	TB0_TB0CTL_TBSSEL_INCLK  = 0x0300

	// TB0CCTLn
	TB0_TB0CCTL_CCIFG      = 0x0001
	TB0_TB0CCTL_COV        = 0x0002
	TB0_TB0CCTL_OUT        = 0x0004
	TB0_TB0CCTL_CCI        = 0x0008
	TB0_TB0CCTL_CCIE       = 0x0010
	TB0_TB0CCTL_OUTMOD_Pos = 5
	TB0_TB0CCTL_OUTMOD_Msk = 0x00E0
	TB0_TB0CCTL_CAP        = 0x0100
	TB0_TB0CCTL_SCS        = 0x0800
	TB0_TB0CCTL_CCIS_Pos   = 12
	TB0_TB0CCTL_CCIS_Msk   = 0x3000
	TB0_TB0CCTL_CM_Pos     = 14
	TB0_TB0CCTL_CM_Msk     = 0xC000

	// TB0EX0
	TB0_TB0EX0_TBIDEX_Pos = 0
	TB0_TB0EX0_TBIDEX_Msk = 0x0007
)

// ---------------------------------------------------------------------------
// eUSCI_A (UART mode)

type E_USCI_A_Type struct {
	UCACTLW0 Register16 // 0x00
	UCACTLW1 Register16 // 0x02
	_        [2]byte
	UCABRW   Register16 // 0x06
	UCAMCTLW Register16 // 0x08
	UCASTATW Register16 // 0x0A
	UCARXBUF Register16 // 0x0C
	UCATXBUF Register16 // 0x0E
	UCAABCTL Register16 // 0x10
	UCAIRCTL Register16 // 0x12
	_        [6]byte
	UCAIE    Register16 // 0x1A
	UCAIFG   Register16 // 0x1C
	UCAIV    Register16 // 0x1E
}

const (
	// UCACTLW0
	E_USCI_A_UCACTLW0_UCSWRST      = 0x0001
	E_USCI_A_UCACTLW0_UCSSEL_Pos   = 6
	E_USCI_A_UCACTLW0_UCSSEL_Msk   = 0x00C0
	E_USCI_A_UCACTLW0_UCSSEL_UCLK  = 0x0000
	E_USCI_A_UCACTLW0_UCSSEL_ACLK  = 0x0040
	E_USCI_A_UCACTLW0_UCSSEL_SMCLK = 0x0080
	E_USCI_A_UCACTLW0_UCSPB        = 0x0800
	E_USCI_A_UCACTLW0_UC7BIT       = 0x1000
	E_USCI_A_UCACTLW0_UCMSB        = 0x2000
	E_USCI_A_UCACTLW0_UCPAR        = 0x4000
	E_USCI_A_UCACTLW0_UCPEN        = 0x8000

	// UCAMCTLW
	E_USCI_A_UCAMCTLW_UCOS16    = 0x0001
	E_USCI_A_UCAMCTLW_UCBRF_Pos = 4
	E_USCI_A_UCAMCTLW_UCBRF_Msk = 0x00F0
	E_USCI_A_UCAMCTLW_UCBRS_Pos = 8
	E_USCI_A_UCAMCTLW_UCBRS_Msk = 0xFF00

	// UCAIFG
	E_USCI_A_UCAIFG_UCRXIFG    = 0x0001
	E_USCI_A_UCAIFG_UCTXIFG    = 0x0002
	E_USCI_A_UCAIFG_UCSTTIFG   = 0x0004
	E_USCI_A_UCAIFG_UCTXCPTIFG = 0x0008

	// UCASTATW
	E_USCI_A_UCASTATW_UCBUSY = 0x0001
	E_USCI_A_UCASTATW_UCOE   = 0x0020
)
