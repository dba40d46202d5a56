// Package apperrors defines the closed error taxonomy shared by the
// evaluation engine and its HTTP surface. Every failure a caller can see
// maps to one of the codes below, each carrying a fixed user-presentable
// title, message and remedy. Unknown causes are wrapped into
// CodeInternal rather than leaking raw errors to callers.
package apperrors

import (
	"fmt"
	"net/http"
)

// Code identifies one entry of the error taxonomy.
type Code string

// Input and parsing errors.
const (
	CodeUnreadableFile    Code = "UNREADABLE_FILE"
	CodeUnsupportedFormat Code = "UNSUPPORTED_FORMAT"
	CodeCorruptFile       Code = "CORRUPT_FILE"
	CodeEmptyContent      Code = "EMPTY_CONTENT"
	CodeOversizedFile     Code = "OVERSIZED_FILE"
	CodeImageOnlyPDF      Code = "IMAGE_ONLY_PDF"
	CodeEncryptedPDF      Code = "ENCRYPTED_PDF"
	CodeContentTooShort   Code = "CONTENT_TOO_SHORT"
)

// Validation errors.
const (
	CodeMissingResume         Code = "MISSING_RESUME"
	CodeMissingJobDescription Code = "MISSING_JOB_DESCRIPTION"
	CodeMalformedInput        Code = "MALFORMED_INPUT"
)

// Scoring and analysis errors.
const (
	CodeDimensionFailed   Code = "DIMENSION_CALCULATION_FAILED"
	CodeGapAnalysisFailed Code = "GAP_ANALYSIS_FAILED"
	CodeJobParsingFailed  Code = "JOB_PARSING_FAILED"
)

// System errors.
const (
	CodeInternal Code = "INTERNAL_ERROR"
	CodeTimeout  Code = "TIMEOUT"
	CodeCache    Code = "CACHE_ERROR"
)

// Phase groups codes by the stage of processing they belong to.
type Phase string

const (
	PhaseInput      Phase = "input"
	PhaseValidation Phase = "validation"
	PhaseScoring    Phase = "scoring"
	PhaseSystem     Phase = "system"
)

// Error is a user-presentable failure. Title, Message and Remedy come from
// the catalog; the wrapped cause is preserved for logging only.
type Error struct {
	Code    Code   `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Remedy  string `json:"remedy"`
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the original cause for errors.Is/As chains and logging.
func (e *Error) Unwrap() error {
	return e.cause
}

// Phase reports which processing stage this error belongs to.
func (e *Error) Phase() Phase {
	return catalog[e.Code].phase
}

type entry struct {
	phase   Phase
	title   string
	message string
	remedy  string
	status  int
}

var catalog = map[Code]entry{
	CodeUnreadableFile: {
		phase:   PhaseInput,
		title:   "File could not be read",
		message: "We couldn't read the uploaded file.",
		remedy:  "Re-export your resume and upload it again.",
		status:  http.StatusBadRequest,
	},
	CodeUnsupportedFormat: {
		phase:   PhaseInput,
		title:   "Unsupported file format",
		message: "This file format isn't supported.",
		remedy:  "Upload a PDF, Word document, or plain text file.",
		status:  http.StatusBadRequest,
	},
	CodeCorruptFile: {
		phase:   PhaseInput,
		title:   "File appears corrupted",
		message: "The file couldn't be opened because it looks damaged.",
		remedy:  "Re-save the file from its original application and try again.",
		status:  http.StatusBadRequest,
	},
	CodeEmptyContent: {
		phase:   PhaseInput,
		title:   "No content found",
		message: "The resume contains no readable content.",
		remedy:  "Check that the file isn't blank, then upload it again.",
		status:  http.StatusBadRequest,
	},
	CodeOversizedFile: {
		phase:   PhaseInput,
		title:   "File too large",
		message: "The file exceeds the maximum supported size.",
		remedy:  "Remove embedded images or split the document, then retry.",
		status:  http.StatusBadRequest,
	},
	CodeImageOnlyPDF: {
		phase:   PhaseInput,
		title:   "Scanned PDF detected",
		message: "This PDF contains only images, so no text could be extracted.",
		remedy:  "Export a text-based PDF from your editor instead of a scan.",
		status:  http.StatusBadRequest,
	},
	CodeEncryptedPDF: {
		phase:   PhaseInput,
		title:   "Password-protected PDF",
		message: "The PDF is encrypted and can't be opened.",
		remedy:  "Remove the password protection and upload the file again.",
		status:  http.StatusBadRequest,
	},
	CodeContentTooShort: {
		phase:   PhaseInput,
		title:   "Resume too short",
		message: "There isn't enough content to produce a meaningful evaluation.",
		remedy:  "Add your work experience, education, and skills, then retry.",
		status:  http.StatusBadRequest,
	},
	CodeMissingResume: {
		phase:   PhaseValidation,
		title:   "Resume required",
		message: "No resume was provided.",
		remedy:  "Include a parsed resume in the request body.",
		status:  http.StatusBadRequest,
	},
	CodeMissingJobDescription: {
		phase:   PhaseValidation,
		title:   "Job description required",
		message: "No job description or job requirements were provided.",
		remedy:  "Include the job text or parsed requirements in the request.",
		status:  http.StatusBadRequest,
	},
	CodeMalformedInput: {
		phase:   PhaseValidation,
		title:   "Invalid input",
		message: "The request body couldn't be understood.",
		remedy:  "Check the request format against the API documentation.",
		status:  http.StatusBadRequest,
	},
	CodeDimensionFailed: {
		phase:   PhaseScoring,
		title:   "Scoring failed",
		message: "One of the scoring dimensions could not be calculated.",
		remedy:  "Try again; if the problem persists, contact support.",
		status:  http.StatusInternalServerError,
	},
	CodeGapAnalysisFailed: {
		phase:   PhaseScoring,
		title:   "Gap analysis failed",
		message: "The comparison against the job requirements failed.",
		remedy:  "Try again with a simpler job description.",
		status:  http.StatusInternalServerError,
	},
	CodeJobParsingFailed: {
		phase:   PhaseScoring,
		title:   "Job description not understood",
		message: "No requirements could be extracted from the job description.",
		remedy:  "Paste the full job posting, including its requirements section.",
		status:  http.StatusUnprocessableEntity,
	},
	CodeInternal: {
		phase:   PhaseSystem,
		title:   "Something went wrong",
		message: "An unexpected error occurred while evaluating the resume.",
		remedy:  "Try again in a moment.",
		status:  http.StatusInternalServerError,
	},
	CodeTimeout: {
		phase:   PhaseSystem,
		title:   "Evaluation timed out",
		message: "The evaluation took too long and was cancelled.",
		remedy:  "Try again; very long resumes may need to be shortened.",
		status:  http.StatusGatewayTimeout,
	},
	CodeCache: {
		phase:   PhaseSystem,
		title:   "Cache error",
		message: "The result cache failed; the evaluation itself was unaffected.",
		remedy:  "No action needed.",
		status:  http.StatusInternalServerError,
	},
}

// New returns the catalog error for code. Unknown codes collapse to
// CodeInternal so callers can never observe an unlisted code.
func New(code Code) *Error {
	e, ok := catalog[code]
	if !ok {
		code = CodeInternal
		e = catalog[CodeInternal]
	}
	return &Error{
		Code:    code,
		Title:   e.title,
		Message: e.message,
		Remedy:  e.remedy,
	}
}

// Wrap builds the catalog error for code with cause attached as detail.
func Wrap(code Code, cause error) *Error {
	err := New(code)
	err.cause = cause
	return err
}

// From normalizes any error to a taxonomy error. A *Error passes through
// unchanged; anything else becomes CodeInternal with the cause preserved.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return Wrap(CodeInternal, err)
}

// HTTPStatus maps a code to the status the API layer should respond with.
func HTTPStatus(code Code) int {
	if e, ok := catalog[code]; ok {
		return e.status
	}
	return http.StatusInternalServerError
}

// Codes lists every code in the taxonomy, grouped by declaration order of
// the phases. Used by tests to verify catalog completeness.
func Codes() []Code {
	return []Code{
		CodeUnreadableFile, CodeUnsupportedFormat, CodeCorruptFile,
		CodeEmptyContent, CodeOversizedFile, CodeImageOnlyPDF,
		CodeEncryptedPDF, CodeContentTooShort,
		CodeMissingResume, CodeMissingJobDescription, CodeMalformedInput,
		CodeDimensionFailed, CodeGapAnalysisFailed, CodeJobParsingFailed,
		CodeInternal, CodeTimeout, CodeCache,
	}
}
