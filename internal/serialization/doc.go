// Package serialization provides a binary checkpoint format for model weights.
//
// A file holds named float64 matrices, the layout produced by a network's
// StateDict:
//
//	Format Structure:
//	  [64 bytes: fixed header]
//	    0x00-0x03: Magic "ADGR"
//	    0x04-0x07: Version (uint32 LE)
//	    0x08-0x0B: Flags (uint32 LE)
//	    0x0C-0x0F: Reserved
//	    0x10-0x17: Header size (uint64 LE)
//	    0x18-0x1F: Data size (uint64 LE)
//	    0x20-0x3F: SHA-256 of the data section
//	  [Header: JSON metadata]
//	  [Padding to a 64-byte boundary]
//	  [Matrix data: row-major float64 LE]
//
// Example usage:
//
//	// Save
//	err := serialization.SaveFile("model.adgr", model.StateDict(), serialization.Header{
//	    ModelType: "Sequential",
//	})
//
//	// Load
//	stateDict, header, err := serialization.LoadFile("model.adgr")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = model.LoadStateDict(stateDict)
package serialization
