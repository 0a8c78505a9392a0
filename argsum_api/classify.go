package argsum_api

// pcIdentOfLongest returns the percent identity of the record with the
// greatest assembled length. The first record wins ties. Records missing
// either the assembled length or the identity are never selected.
func pcIdentOfLongest(records []ReportRecord) (float64, error) {
	longest := -1
	identity := 0.0
	found := false
	for _, record := range records {
		if !record.Assembled.Valid || !record.PcIdent.Valid {
			continue
		}
		if record.Assembled.Value > longest {
			longest = record.Assembled.Value
			identity = record.PcIdent.Value
			found = true
		}
	}
	if !found {
		return 0, ErrNoIdentity
	}
	return identity, nil
}

// Classify reduces all records of one gene in one sample to a single
// summary code:
//
//	0 the assembly failed, the gene was not assembled, or the identity of
//	  the longest assembly is at or below minID
//	1 the gene was hit on both strands, or has no complete open reading
//	  frame
//	2 the gene assembled, but split or duplicated over contigs
//	3 the complete gene sits in one unique contig and carries
//	  nonsynonymous variants
//	4 the complete gene sits in one unique contig without nonsynonymous
//	  variants
//
// The flag checks use the first record of the gene; the identity check uses
// the record with the longest assembly.
func Classify(records []ReportRecord, minID float64) (int, error) {
	identity, err := pcIdentOfLongest(records)
	if err != nil {
		return 0, err
	}

	flags := records[0].Flags
	switch {
	case flags.Has(AssemblyFail) || !flags.Has(GeneAssembled) || identity <= minID:
		return 0, nil
	case flags.Has(HitBothStrands) || !flags.Has(CompleteORF):
		return 1, nil
	case flags.Has(UniqueContig|GeneAssembledIntoOneContig|CompleteORF):
		if flags.Has(HasNonsynonymousVariants) {
			return 3, nil
		}
		return 4, nil
	default:
		return 2, nil
	}
}
