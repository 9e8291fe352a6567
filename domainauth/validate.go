package domainauth

import (
	"errors"
	"fmt"

	"github.com/mepost/mepost-go"
)

var (
	// ErrSPFNotVerified is returned when the SPF record is not verified.
	ErrSPFNotVerified = errors.New("SPF record not verified")

	// ErrDKIMNotVerified is returned when the DKIM record is not verified.
	ErrDKIMNotVerified = errors.New("DKIM record not verified")

	// ErrDMARCNotVerified is returned when the DMARC record is not verified.
	ErrDMARCNotVerified = errors.New("DMARC record not verified")

	// ErrNoDomain is returned when there is no domain to validate.
	ErrNoDomain = errors.New("no domain to validate")
)

// ValidationError lists every record that failed validation.
type ValidationError struct {
	Domain string
	SPF    error
	DKIM   error
	DMARC  error
}

func (e *ValidationError) Error() string {
	var msg string
	if e.SPF != nil {
		msg += fmt.Sprintf("SPF: %v; ", e.SPF)
	}
	if e.DKIM != nil {
		msg += fmt.Sprintf("DKIM: %v; ", e.DKIM)
	}
	if e.DMARC != nil {
		msg += fmt.Sprintf("DMARC: %v; ", e.DMARC)
	}
	if msg == "" {
		return "validation failed"
	}
	return e.Domain + ": " + msg[:len(msg)-2]
}

// Unwrap returns the individual record errors.
func (e *ValidationError) Unwrap() []error {
	var errs []error
	for _, err := range []error{e.SPF, e.DKIM, e.DMARC} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Validate returns nil when SPF, DKIM and DMARC are all verified for d.
func Validate(d *mepost.CompanyDomain) error {
	if d == nil {
		return ErrNoDomain
	}

	validationErr := ValidationError{
		Domain: d.Domain,
		SPF:    ValidateSPF(d),
		DKIM:   ValidateDKIM(d),
		DMARC:  ValidateDMARC(d),
	}
	if validationErr.SPF != nil || validationErr.DKIM != nil || validationErr.DMARC != nil {
		return &validationErr
	}
	return nil
}

// ValidateSPF validates only the SPF record.
func ValidateSPF(d *mepost.CompanyDomain) error {
	if d == nil {
		return ErrNoDomain
	}
	if !d.SPFVerified {
		return notVerified(ErrSPFNotVerified, d.SPFName)
	}
	return nil
}

// ValidateDKIM validates only the DKIM record.
func ValidateDKIM(d *mepost.CompanyDomain) error {
	if d == nil {
		return ErrNoDomain
	}
	if !d.DKIMVerified {
		return notVerified(ErrDKIMNotVerified, d.DKIMName)
	}
	return nil
}

// ValidateDMARC validates only the DMARC record.
func ValidateDMARC(d *mepost.CompanyDomain) error {
	if d == nil {
		return ErrNoDomain
	}
	if !d.DMARCVerified {
		return notVerified(ErrDMARCNotVerified, d.DMARCName)
	}
	return nil
}

func notVerified(err error, record string) error {
	if record == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, record)
}
