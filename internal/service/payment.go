package service

import (
	"fmt"
	"sync"
	"time"

	"coursebot/internal/catalog"
	"coursebot/internal/domain"
	"coursebot/internal/repository"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// PaymentOptions tunes the payment flow
type PaymentOptions struct {
	// ArmDelay postpones the follow-up message and the expectation.
	// Zero arms immediately. A pending arm is cancelled by the user's next action.
	ArmDelay time.Duration
}

// PaymentService drives the per-user payment flow:
// course → currency menu → requisites → screenshot → forwarded.
type PaymentService struct {
	catalog      *catalog.Catalog
	expectations repository.ExpectationRepository
	trails       *TrailService
	notifier     *Notifier
	messenger    Messenger
	logger       *zap.Logger
	opts         PaymentOptions

	locks *userLocks
	flow  *flowTracker

	pendingMu sync.Mutex
	pending   map[int64]*pendingArm
}

type pendingArm struct {
	timer *time.Timer
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	cat *catalog.Catalog,
	expectations repository.ExpectationRepository,
	trails *TrailService,
	notifier *Notifier,
	messenger Messenger,
	logger *zap.Logger,
	opts PaymentOptions,
) *PaymentService {
	return &PaymentService{
		catalog:      cat,
		expectations: expectations,
		trails:       trails,
		notifier:     notifier,
		messenger:    messenger,
		logger:       logger,
		opts:         opts,
		locks:        newUserLocks(),
		flow:         newFlowTracker(logger),
		pending:      make(map[int64]*pendingArm),
	}
}

// State returns the user's position in the payment flow
func (s *PaymentService) State(userID int64) domain.FlowState {
	return s.flow.state(userID)
}

// Forget drops the user's flow position and any pending delayed arm
func (s *PaymentService) Forget(userID int64) {
	unlock := s.locks.lock(userID)
	defer unlock()

	s.cancelPending(userID)
	s.flow.reset(userID)
}

// ShowMenu sends a main-menu section. handled is false for unknown labels.
func (s *PaymentService) ShowMenu(sender domain.Sender, label string) (handled bool, err error) {
	menu, ok := s.catalog.Menu(label)
	if !ok {
		return false, nil
	}

	unlock := s.locks.lock(sender.ID)
	defer unlock()

	msg := domain.Message{Text: menu.Text, ParseMode: domain.ParseModeMarkdown}
	if menu.URL != "" {
		msg.Inline = append(msg.Inline, []domain.Button{{Text: menu.URLButton, URL: menu.URL}})
	}
	for _, id := range menu.Courses {
		course, ok := s.catalog.Course(id)
		if !ok {
			continue
		}
		if course.MoreButton != "" {
			msg.Inline = append(msg.Inline, []domain.Button{{Text: course.MoreButton, Data: catalog.LearnMoreData(id)}})
		}
		msg.Inline = append(msg.Inline, []domain.Button{{Text: course.BuyButton, Data: catalog.BuyData(id)}})
	}

	if _, err := s.messenger.Send(sender.ID, msg); err != nil {
		return true, errors.Wrapf(err, "send menu %q", label)
	}
	if len(menu.Courses) > 0 {
		s.flow.fire(sender.ID, eventViewCourse)
	}
	return true, nil
}

// SendCourseDocument sends the course's descriptive document
func (s *PaymentService) SendCourseDocument(sender domain.Sender, id domain.CourseID) error {
	fileID, caption, err := s.catalog.Document(id)
	if err != nil {
		s.logger.Info("Course document unavailable",
			zap.Int64("user_id", sender.ID),
			zap.String("course", string(id)),
			zap.Error(err),
		)
		if _, err := s.messenger.Send(sender.ID, domain.Message{Text: textDocumentMissing}); err != nil {
			return errors.Wrap(err, "send document fallback")
		}
		return nil
	}

	if _, err := s.messenger.SendDocument(sender.ID, fileID, caption); err != nil {
		return errors.Wrapf(err, "send document for %s", id)
	}
	return nil
}

// StartPurchase clears the previous flow and shows the currency menu
func (s *PaymentService) StartPurchase(sender domain.Sender, id domain.CourseID) error {
	unlock := s.locks.lock(sender.ID)
	defer unlock()

	s.cancelPending(sender.ID)
	s.trails.CleanupAll(sender.ID)

	course, ok := s.catalog.Course(id)
	if !ok {
		return s.sendUnavailable(sender.ID)
	}

	msg := domain.Message{Text: textChooseCurrency}
	for _, cur := range s.catalog.Currencies {
		if _, priced := course.Prices[cur.Code]; !priced {
			continue
		}
		msg.Inline = append(msg.Inline, []domain.Button{{Text: cur.Button, Data: catalog.PayData(id, cur.Code)}})
	}

	messageID, err := s.messenger.Send(sender.ID, msg)
	if err != nil {
		return errors.Wrap(err, "send currency menu")
	}
	s.trails.RecordMain(sender.ID, messageID)

	s.logger.Info("Purchase started",
		zap.Int64("user_id", sender.ID),
		zap.String("course", string(id)),
		zap.String("state", string(s.flow.fire(sender.ID, eventBuy))),
	)
	return nil
}

// SelectCurrency shows requisites for the course and currency and tells the
// user where to send the screenshot
func (s *PaymentService) SelectCurrency(sender domain.Sender, id domain.CourseID, code domain.Currency) error {
	unlock := s.locks.lock(sender.ID)
	defer unlock()

	s.cancelPending(sender.ID)
	s.trails.CleanupSub(sender.ID)

	req, err := s.catalog.Lookup(id, code)
	if err != nil {
		s.logger.Warn("Requisites not found",
			zap.Int64("user_id", sender.ID),
			zap.Error(err),
		)
		return s.sendUnavailable(sender.ID)
	}

	msg := domain.Message{Text: req.Text}
	if req.CopyLabel != "" {
		msg.Inline = [][]domain.Button{{{Text: req.CopyLabel, Data: catalog.CopyData(code)}}}
	}
	if err := s.sendSub(sender.ID, msg); err != nil {
		return errors.Wrap(err, "send requisites")
	}
	s.flow.fire(sender.ID, eventSelectCurrency)

	s.logger.Info("Requisites shown",
		zap.Int64("user_id", sender.ID),
		zap.String("course", string(id)),
		zap.String("currency", string(code)),
		zap.Int64("admin_id", req.AdminID),
	)

	if s.opts.ArmDelay > 0 {
		s.schedulePending(sender, req)
		return nil
	}
	return s.arm(sender, req)
}

// RevealCopyValue sends the account number in a copy-friendly form
func (s *PaymentService) RevealCopyValue(sender domain.Sender, code domain.Currency) error {
	unlock := s.locks.lock(sender.ID)
	defer unlock()

	_, raw, ok := s.catalog.CopyValue(code)
	if !ok {
		return s.sendUnavailable(sender.ID)
	}

	if err := s.sendSub(sender.ID, domain.Message{Text: textCopyHint}); err != nil {
		return errors.Wrap(err, "send copy hint")
	}
	value := domain.Message{
		Text:      "<code>" + catalog.StripSeparators(raw) + "</code>",
		ParseMode: domain.ParseModeHTML,
	}
	if err := s.sendSub(sender.ID, value); err != nil {
		return errors.Wrap(err, "send copy value")
	}
	s.flow.fire(sender.ID, eventCopy)
	return nil
}

// HandlePhoto forwards a payment screenshot to the expected admin.
// Photos without an expectation are ignored; consumed reports whether one was used up.
func (s *PaymentService) HandlePhoto(sender domain.Sender, sizes []domain.PhotoSize) (consumed bool, err error) {
	unlock := s.locks.lock(sender.ID)
	defer unlock()

	s.cancelPending(sender.ID)
	s.trails.CleanupAll(sender.ID)

	exp, ok := s.expectations.Take(sender.ID)
	if !ok {
		// The trail is gone, so the flow restarts from the menu
		s.flow.reset(sender.ID)
		return false, nil
	}
	s.flow.fire(sender.ID, eventPhoto)

	courseName := string(exp.CourseID)
	if course, ok := s.catalog.Course(exp.CourseID); ok && course.Name != "" {
		courseName = course.Name
	}
	handle := s.adminHandle(exp.AdminID)

	photo, ok := domain.Largest(sizes)
	if !ok {
		s.logger.Warn("Photo update without sizes", zap.Int64("user_id", sender.ID))
		return true, s.reply(sender.ID, fmt.Sprintf(textForwardFailed, handle))
	}

	err = s.notifier.ForwardScreenshot(exp.AdminID, photo.FileID, screenshotCaption(courseName, sender))
	switch {
	case err == nil:
		return true, s.reply(sender.ID, textScreenshotReceived)
	case errors.Is(err, domain.ErrRecipientNotFound):
		s.logger.Error("Admin chat not found",
			zap.Int64("user_id", sender.ID),
			zap.Int64("admin_id", exp.AdminID),
			zap.Error(err),
		)
		return true, s.reply(sender.ID, fmt.Sprintf(textAdminNotFound, handle))
	default:
		s.logger.Error("Failed to forward screenshot",
			zap.Int64("user_id", sender.ID),
			zap.Int64("admin_id", exp.AdminID),
			zap.Error(err),
		)
		return true, s.reply(sender.ID, fmt.Sprintf(textForwardFailed, handle))
	}
}

// arm sends the follow-up and, for users with a public handle, sets the expectation.
// Without a handle the bot cannot correlate the reply, so the admin is named instead.
func (s *PaymentService) arm(sender domain.Sender, req domain.Requisites) error {
	if !sender.HasHandle() {
		text := fmt.Sprintf(textSendToAdminFormat, orAnyAdmin(req.AdminHandle))
		if err := s.sendSub(sender.ID, domain.Message{Text: text}); err != nil {
			return errors.Wrap(err, "send admin contact")
		}
		return nil
	}

	s.expectations.Set(sender.ID, domain.Expectation{
		UserID:   sender.ID,
		AdminID:  req.AdminID,
		CourseID: req.CourseID,
	})
	s.flow.fire(sender.ID, eventArm)

	if err := s.sendSub(sender.ID, domain.Message{Text: textSendScreenshot}); err != nil {
		return errors.Wrap(err, "send screenshot prompt")
	}
	return nil
}

// schedulePending arms after opts.ArmDelay unless cancelled first. Caller holds the user lock.
func (s *PaymentService) schedulePending(sender domain.Sender, req domain.Requisites) {
	p := &pendingArm{}

	s.pendingMu.Lock()
	s.pending[sender.ID] = p
	p.timer = time.AfterFunc(s.opts.ArmDelay, func() {
		unlock := s.locks.lock(sender.ID)
		defer unlock()

		// A cancel that lost the race with the timer removed or replaced the entry
		s.pendingMu.Lock()
		current := s.pending[sender.ID] == p
		if current {
			delete(s.pending, sender.ID)
		}
		s.pendingMu.Unlock()
		if !current {
			return
		}

		if err := s.arm(sender, req); err != nil {
			s.logger.Error("Delayed arm failed", zap.Int64("user_id", sender.ID), zap.Error(err))
		}
	})
	s.pendingMu.Unlock()
}

// cancelPending stops a scheduled arm. Caller holds the user lock.
func (s *PaymentService) cancelPending(userID int64) {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	if p, ok := s.pending[userID]; ok {
		p.timer.Stop()
		delete(s.pending, userID)
		s.logger.Debug("Pending arm cancelled", zap.Int64("user_id", userID))
	}
}

func (s *PaymentService) sendSub(userID int64, msg domain.Message) error {
	messageID, err := s.messenger.Send(userID, msg)
	if err != nil {
		return err
	}
	s.trails.AppendSub(userID, messageID)
	return nil
}

func (s *PaymentService) sendUnavailable(userID int64) error {
	return s.sendSub(userID, domain.Message{Text: textUnavailable})
}

func (s *PaymentService) reply(userID int64, text string) error {
	if _, err := s.messenger.Send(userID, domain.Message{Text: text}); err != nil {
		return errors.Wrap(err, "send reply")
	}
	return nil
}

func (s *PaymentService) adminHandle(adminID int64) string {
	for _, admin := range s.catalog.Admins {
		if admin.ID == adminID {
			return orAnyAdmin(admin.Handle)
		}
	}
	return textAnyAdmin
}

func orAnyAdmin(handle string) string {
	if handle == "" {
		return textAnyAdmin
	}
	return handle
}
