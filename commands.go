package rm690b0

// RM690B0 command set (from the RM690B0 datasheet).
//
// The read commands are listed for completeness; this driver never issues
// them, the QSPI wiring on known boards is write-only.
const (
	NOP       = 0x00
	SWRESET   = 0x01 // Software Reset
	RDDID     = 0x04 // Read Display Identification Information
	RDNUMED   = 0x05 // Read Number of Errors on DSI
	RDDPM     = 0x0A // Read Display Power Mode
	RDDMADCTR = 0x0B // Read Display MADCTR
	RDDCOLMOD = 0x0C // Read Display Pixel Format
	RDDIM     = 0x0D // Read Display Image Mode
	RDDSM     = 0x0E // Read Display Signal Mode
	RDDSDR    = 0x0F // Read Display Self-Diagnostic Result
	SLPIN     = 0x10 // Sleep In
	SLPOUT    = 0x11 // Sleep Out
	PTLON     = 0x12 // Partial Display Mode On
	NORON     = 0x13 // Normal Display Mode On
	INVOFF    = 0x20 // Display Inversion Off
	INVON     = 0x21 // Display Inversion On
	ALLPOFF   = 0x22 // All Pixel Off
	ALLPON    = 0x23 // All Pixel On
	DISPOFF   = 0x28 // Display Off
	DISPON    = 0x29 // Display On
	CASET     = 0x2A // Column Address Set
	RASET     = 0x2B // Row Address Set
	RAMWR     = 0x2C // Memory Write
	PTLAR     = 0x30 // Partial Area
	TEOFF     = 0x34 // Tearing Effect Off
	TEON      = 0x35 // Tearing Effect On
	MADCTR    = 0x36 // Memory Data Access Control
	IDMOFF    = 0x38 // Idle Mode Off
	IDMON     = 0x39 // Idle Mode On
	COLMOD    = 0x3A // Interface Pixel Format
	RAMWRC    = 0x3C // Memory Continuous Write
	STESL     = 0x44 // Set Tear Scan Line
	GSL       = 0x45 // Get Scan Line
	DSTBON    = 0x4F // Deep Standby Mode On
	WRDISBV   = 0x51 // Write Display Brightness
	RDDISBV   = 0x52 // Read Display Brightness
	WRCTRLD   = 0x53 // Write CTRL Display
	RDCTRLD   = 0x54 // Read CTRL Display
	WRRADACL  = 0x55 // RAD_ACL Control
	COLORTEMP = 0x55 // Color Temperature Selection (shared with WRRADACL)
	WRHBM     = 0x63 // Write HBM Display Brightness
	RDHBM     = 0x64 // Read HBM Display Brightness
	HBMMODE   = 0x66 // Set HBM Mode
	FRLEVEL   = 0x67 // Frame Rate Level Control
	COLSET    = 0x70 // Interface Pixel Format Set
	COLOPT    = 0x80 // Interface Pixel Format Option
	RDDDBS    = 0xA1 // Read DDB Start
	RDDDBC    = 0xA8 // Read DDB Continuous
	RDFCS     = 0xAA // Read First Checksum
	RDCCS     = 0xAF // Read Continue Checksum
)

// Memory Data Access Control (MADCTR) bit fields.
const (
	_                  byte = 1 << iota // D0: reserved
	_                                   // D1: reserved
	MADCTRLatchOrder                    // D2: MH
	MADCTRBGROrder                      // D3: RGB/BGR
	MADCTRLineOrder                     // D4: ML
	MADCTRPageColumn                    // D5: MV
	MADCTRColumnOrder                   // D6: MX
	MADCTRPageOrder                     // D7: MY
)
