package console

// ReadByte returns table[i]. Constant tables live in ordinary memory on the
// desktop, so program-memory reads are plain indexing.
func ReadByte(table []byte, i int) byte { return table[i] }

// ReadWord returns table[i].
func ReadWord(table []uint16, i int) uint16 { return table[i] }
