package chain

import "sort"

// Credential is a user's salted one-way password hash. Plaintext
// passwords are never stored; the auth package produces and verifies
// credentials.
type Credential struct {
	Salt []byte `cbor:"s"`
	Hash []byte `cbor:"h"`
}

// FileRecord is one stored file within a snapshot. The permission set
// lives on the record itself; the owner is always authorized and never
// appears in Shared.
type FileRecord struct {
	Name    string          `cbor:"n"`
	Content []byte          `cbor:"c"`
	Owner   string          `cbor:"o"`
	Added   int64           `cbor:"a"` // unix seconds
	Seq     uint64          `cbor:"q"` // insertion order across the chain's history
	Shared  map[string]bool `cbor:"s,omitempty"`
}

// Authorized reports whether user may read the file.
func (r *FileRecord) Authorized(user string) bool {
	return user == r.Owner || r.Shared[user]
}

// Clone returns a deep copy of the record.
func (r *FileRecord) Clone() *FileRecord {
	out := &FileRecord{
		Name:    r.Name,
		Content: append([]byte(nil), r.Content...),
		Owner:   r.Owner,
		Added:   r.Added,
		Seq:     r.Seq,
	}
	if r.Shared != nil {
		out.Shared = make(map[string]bool, len(r.Shared))
		for u := range r.Shared {
			out.Shared[u] = true
		}
	}
	return out
}

// Snapshot is the complete state carried by a block: every block embeds
// a full snapshot, never a diff, so any single block is self-sufficient
// for reads against that point in history.
type Snapshot struct {
	Users   map[string]Credential  `cbor:"u"`
	Files   map[string]*FileRecord `cbor:"f"`
	NextSeq uint64                 `cbor:"q"` // next file insertion number
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users: make(map[string]Credential),
		Files: make(map[string]*FileRecord),
	}
}

// Clone returns a deep copy, so a pending mutation never aliases the
// published payload of an already-hashed block.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Users:   make(map[string]Credential, len(s.Users)),
		Files:   make(map[string]*FileRecord, len(s.Files)),
		NextSeq: s.NextSeq,
	}
	for name, cred := range s.Users {
		out.Users[name] = Credential{
			Salt: append([]byte(nil), cred.Salt...),
			Hash: append([]byte(nil), cred.Hash...),
		}
	}
	for name, rec := range s.Files {
		out.Files[name] = rec.Clone()
	}
	return out
}

// FilesInOrder returns the snapshot's file records sorted by insertion
// order, the order query results are reported in.
func (s *Snapshot) FilesInOrder() []*FileRecord {
	out := make([]*FileRecord, 0, len(s.Files))
	for _, rec := range s.Files {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}
