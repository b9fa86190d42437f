package domain

import "go.trai.ch/zerr"

// RequireElevated runs action only if the settings snapshot reports the
// process holds root privilege (directly or via sudo). Otherwise it returns
// ErrMustBeRoot and the action is never invoked. The snapshot is never
// mutated; on success the action runs exactly once and its result passes
// through unchanged.
func RequireElevated(s *Settings, action func() error) error {
	if !s.Elevated() {
		return zerr.With(ErrMustBeRoot, "effective_uid", s.EffectiveUserID)
	}
	return action()
}

// ForbidTrueRoot runs action only if the process is not the unconditional
// root identity. Building software as the literal root account is rejected
// by the build toolchain; a build user explicitly configured as "root" is
// treated as an intentional override and allowed through.
func ForbidTrueRoot(s *Settings, action func() error) error {
	if s.TrueRoot() && s.BuildUser != "root" {
		return zerr.With(ErrTrueRootForbidden, "build_user", s.BuildUser)
	}
	return action()
}
