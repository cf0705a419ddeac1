package domain

import (
	"fmt"

	apperrors "github.com/louisbranch/yogastudio/internal/platform/errors"
)

// YogaClassKind is the style of a regular yoga class.
type YogaClassKind int

const (
	// YogaClassUnspecified represents an invalid class kind value.
	YogaClassUnspecified YogaClassKind = iota
	YogaClassHatha
	YogaClassVinyasa
	YogaClassIyengar
	YogaClassAshtanga
	YogaClassKundalini
	YogaClassRestorative
)

// WorkshopKind is the topic of a workshop.
type WorkshopKind int

const (
	// WorkshopUnspecified represents an invalid workshop kind value.
	WorkshopUnspecified WorkshopKind = iota
	WorkshopIntro
	WorkshopChakra
	WorkshopNidra
	WorkshopInversions
	WorkshopRestorative
)

var (
	// ErrUnknownClassKind indicates a name outside the yoga class enumeration.
	ErrUnknownClassKind = apperrors.New(apperrors.CodeUnknownClassKind, "yoga class not found")
	// ErrUnknownWorkshopKind indicates a name outside the workshop enumeration.
	ErrUnknownWorkshopKind = apperrors.New(apperrors.CodeUnknownWorkshopKind, "yoga workshop not found")
)

var yogaClassNames = []string{
	YogaClassHatha:       "Hatha",
	YogaClassVinyasa:     "Vinyasa",
	YogaClassIyengar:     "Iyengar",
	YogaClassAshtanga:    "Ashtanga",
	YogaClassKundalini:   "Kundalini",
	YogaClassRestorative: "Restorative",
}

var workshopNames = []string{
	WorkshopIntro:       "Intro",
	WorkshopChakra:      "Chakra",
	WorkshopNidra:       "Nidra",
	WorkshopInversions:  "Inversions",
	WorkshopRestorative: "Restorative",
}

// ParseYogaClassKind returns the class kind with exactly the given name.
func ParseYogaClassKind(name string) (YogaClassKind, error) {
	for kind, candidate := range yogaClassNames {
		if kind != int(YogaClassUnspecified) && candidate == name {
			return YogaClassKind(kind), nil
		}
	}
	return YogaClassUnspecified, apperrors.WithMetadata(
		apperrors.CodeUnknownClassKind,
		fmt.Sprintf("yoga class not found: %s", name),
		map[string]string{"Kind": name},
	)
}

// ParseWorkshopKind returns the workshop kind with exactly the given name.
func ParseWorkshopKind(name string) (WorkshopKind, error) {
	for kind, candidate := range workshopNames {
		if kind != int(WorkshopUnspecified) && candidate == name {
			return WorkshopKind(kind), nil
		}
	}
	return WorkshopUnspecified, apperrors.WithMetadata(
		apperrors.CodeUnknownWorkshopKind,
		fmt.Sprintf("yoga workshop not found: %s", name),
		map[string]string{"Kind": name},
	)
}

// YogaClassKinds lists every valid class kind in declaration order.
func YogaClassKinds() []YogaClassKind {
	kinds := make([]YogaClassKind, 0, len(yogaClassNames)-1)
	for k := YogaClassHatha; int(k) < len(yogaClassNames); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// WorkshopKinds lists every valid workshop kind in declaration order.
func WorkshopKinds() []WorkshopKind {
	kinds := make([]WorkshopKind, 0, len(workshopNames)-1)
	for k := WorkshopIntro; int(k) < len(workshopNames); k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k YogaClassKind) String() string {
	if k <= YogaClassUnspecified || int(k) >= len(yogaClassNames) {
		return "Unspecified"
	}
	return yogaClassNames[k]
}

func (k WorkshopKind) String() string {
	if k <= WorkshopUnspecified || int(k) >= len(workshopNames) {
		return "Unspecified"
	}
	return workshopNames[k]
}
