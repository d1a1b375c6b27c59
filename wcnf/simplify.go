package wcnf

import "github.com/sirupsen/logrus"

// Simplify runs the preprocessing pipeline over s in place: harden,
// then subsume equalities and units, then deduplicate, then discover
// mutexes, then remap variables. Each phase is skipped outright when its
// Params switch is off, and the whole pipeline short-circuits the moment
// s.Unsat is set.
//
// Hardening runs first because it only ever turns softs into hards and
// every later phase benefits from seeing those as hards;
// equality-and-units runs next so dedup, mutex-finding, and remap all
// operate on a formula with no redundant equivalent variables; dedup then
// clears out exact duplicates before the mutex finder pays for an oracle
// load; mutex-finding runs last among the "real" passes since it is the
// most expensive; remap always finishes the pipeline so every surviving
// pass has already had its say about which variables and clauses matter.
func (s *Store) Simplify(newOracle OracleFactory, p Params) error {
	if s.Unsat {
		return ErrUnsat
	}
	s.activeParams = p

	log := p.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	fields := logrus.Fields{
		"vars":  s.MaxVar + 1,
		"hards": s.Hard.Len(),
		"softs": s.Soft.Len(),
	}
	log.WithFields(fields).Info("simplify: starting pipeline")

	if p.Harden {
		log.Debug("simplify: hardening")
		s.simplifyHarden(newOracle, p)
		if s.Unsat {
			log.Info("simplify: unsat after hardening")
			return ErrUnsat
		}
	}

	if p.Eqs || p.Units {
		log.Debug("simplify: equalities and units")
		s.simplifyEqualityAndUnits(newOracle, p)
		if s.Unsat {
			log.Info("simplify: unsat after equalities-and-units")
			return ErrUnsat
		}
	}

	log.Debug("simplify: deduplicating")
	s.simplifyDedup()
	if s.Unsat {
		log.Info("simplify: unsat after dedup")
		return ErrUnsat
	}

	if p.MxFind != MxFindNone {
		log.Debug("simplify: mutex discovery")
		s.simplifyMutex(newOracle, p)
		if s.Unsat {
			log.Info("simplify: unsat after mutex discovery")
			return ErrUnsat
		}
		log.WithField("mutexes", len(s.Mutexes)).Info("simplify: mutex discovery done")
	}

	log.Debug("simplify: remapping variables")
	s.simplifyRemap()

	log.WithFields(logrus.Fields{
		"vars":  s.MaxVar + 1,
		"hards": s.Hard.Len(),
		"softs": s.Soft.Len(),
	}).Info("simplify: pipeline done")

	return nil
}
