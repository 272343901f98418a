// Package merge implements PO file merging against a freshly extracted
// template, equivalent to the msgmerge utility.
package merge

import (
	po "github.com/stubintl/stubintl/pofile"
)

// Merge updates a PO file with entries from a POT template.
//   - New template entries are added with empty translations.
//   - Existing entries still present in the template keep their
//     translations; references and flags are refreshed.
//   - Entries no longer in the template are marked obsolete.
func Merge(poFile, potFile *po.File) *po.File {
	result := po.NewFile()

	// Keep the PO file's header, refresh POT-Creation-Date
	result.Header = poFile.Header
	if potFile.Header != nil {
		if created := potFile.HeaderField("POT-Creation-Date"); created != "" {
			result.SetHeaderField("POT-Creation-Date", created)
		}
	}

	existing := make(map[string]*po.Entry)
	for _, e := range poFile.Entries {
		if !e.Obsolete {
			existing[e.MsgID] = e
		}
	}

	matched := make(map[string]bool)

	for _, potEntry := range potFile.Entries {
		if potEntry.MsgID == "" {
			continue
		}

		if old, ok := existing[potEntry.MsgID]; ok {
			result.Entries = append(result.Entries, &po.Entry{
				TranslatorComments: old.TranslatorComments,
				ExtractedComments:  potEntry.ExtractedComments,
				References:         potEntry.References,
				Flags:              mergeFlags(old.Flags, potEntry.Flags),
				MsgID:              potEntry.MsgID,
				MsgStr:             old.MsgStr,
			})
			matched[potEntry.MsgID] = true
		} else {
			result.Entries = append(result.Entries, &po.Entry{
				ExtractedComments: potEntry.ExtractedComments,
				References:        potEntry.References,
				Flags:             potEntry.Flags,
				MsgID:             potEntry.MsgID,
			})
		}
	}

	// Vanished entries are kept obsolete so translations survive a
	// temporary removal of the source docstring.
	for _, e := range poFile.Entries {
		if e.MsgID == "" || e.Obsolete || matched[e.MsgID] {
			continue
		}
		obsolete := *e
		obsolete.Obsolete = true
		obsolete.References = nil
		result.Entries = append(result.Entries, &obsolete)
	}

	return result
}

// mergeFlags combines flags from PO and POT, keeping PO-specific flags
// like "fuzzy" first.
func mergeFlags(poFlags, potFlags []string) []string {
	set := make(map[string]bool)
	for _, f := range poFlags {
		set[f] = true
	}
	for _, f := range potFlags {
		set[f] = true
	}

	var result []string
	if set["fuzzy"] {
		result = append(result, "fuzzy")
	}
	for f := range set {
		if f != "fuzzy" {
			result = append(result, f)
		}
	}
	return result
}
