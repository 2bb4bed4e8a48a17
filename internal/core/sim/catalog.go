package sim

// Event catalog: static commentary and reaction text keyed by event type.
// Shared read-only across sessions.

var tedReactions = map[EventType][]string{
	EventGoal: {
		"Well, hot diggity dog! That's what I call putting the biscuit in the basket!",
		"*pumps both fists* NOW we're cooking with gas, y'all!",
		"That right there is what happens when you BELIEVE!",
		"*hugs Coach Beard* Did you see that?! Football IS life!",
		"Goldfish memory on the last play, but THIS one we remember forever!",
	},
	EventYellowCard: {
		"*winces* Ooh, that's gonna leave a mark on the wallet.",
		"Well, that's what my mama would call a 'learning opportunity'.",
		"*turns to Beard* Is that bad? That seems bad.",
	},
	EventRedCard: {
		"Well... that escalated quickly.",
		"*stares in disbelief* I think we're gonna need a bigger bench.",
		"Time for someone to go think about what they've done.",
	},
	EventSave: {
		"WHAT A SAVE! That keeper's got hands like my Aunt Patty catching biscuits!",
		"*applauds* Now THAT is some Grade-A goalkeeping right there!",
	},
	EventPenaltyAwarded: {
		"*nervously adjusts cap* This is fine. Everything is fine.",
		"Alright, everyone take a deep breath. And then one more. And maybe one more.",
	},
	EventHalftime: {
		"*gathers team* Okay fellas, time for some biscuits and wisdom!",
		"Halftime! Let's go be goldfish and forget any mistakes!",
	},
	EventMatchEnd: {
		"Win or lose, I'm proud of every single one of you!",
		"That's football, y'all! Now who wants barbecue?",
	},
}

var crowdReactions = map[EventType][]string{
	EventGoal: {
		"The crowd ERUPTS! Nelson Road is absolutely bouncing!",
		"SCENES! Fans are hugging complete strangers!",
		"Listen to that roar! You can hear it three blocks away!",
		"The BELIEVE banner is waving wildly in the stands!",
	},
	EventYellowCard: {
		"Boos rain down from the home supporters.",
		"The crowd voices their displeasure with the referee.",
	},
	EventRedCard: {
		"Absolute chaos in the stands! Half the crowd is booing, half is stunned silent.",
		"The away fans are celebrating while home supporters are furious!",
	},
	EventSave: {
		"A collective gasp followed by thunderous applause!",
		"The crowd rises to their feet for that save!",
	},
	EventPenaltyAwarded: {
		"The stadium holds its collective breath...",
		"You could hear a pin drop at Nelson Road right now.",
	},
	EventMatchStart: {
		"The Richmond faithful are in full voice as we kick off!",
	},
	EventHalftime: {
		"Fans head for the tea and biscuits as we reach the break.",
	},
	EventMatchEnd: {
		"The final whistle brings cheers (or groans) around the ground!",
		"Players applaud the fans as another match concludes at Nelson Road.",
	},
}

var commentary = map[EventType][]string{
	EventMatchStart: {
		"And we're underway! The referee blows his whistle and the match begins!",
		"Here we go! 90 minutes of football ahead of us!",
	},
	EventGoal: {
		"GOOOOOAL! What a strike! The net is absolutely bulging!",
		"IT'S IN! Scenes of jubilation!",
		"GOAL! You won't see a better finish than that!",
		"HE'S DONE IT! What a moment!",
	},
	EventPossessionChange: {
		"Possession changes hands as the ball is intercepted.",
		"Good defensive work there to win back the ball.",
		"A loose pass and the other side takes over.",
	},
	EventFoul: {
		"The referee blows for a foul. Perhaps a bit harsh there.",
		"Free kick given as the player is brought down.",
		"That's a clear foul. No complaints there.",
	},
	EventYellowCard: {
		"And that's a booking! The yellow card comes out.",
		"He's been cautioned. The referee reaches for his pocket.",
	},
	EventRedCard: {
		"RED CARD! He's off! What drama!",
		"That's a straight red! He's seen his last action today.",
	},
	EventPenaltyAwarded: {
		"PENALTY! The referee points to the spot!",
		"It's a penalty! This could be huge!",
	},
	EventPenaltyScored: {
		"SCORED! Cool as you like from the penalty spot!",
		"No chance for the keeper! Penalty converted!",
	},
	EventPenaltyMissed: {
		"SAVED! The keeper guesses right!",
		"Over the bar! He's ballooned it!",
	},
	EventSubstitution: {
		"A change for the team. Fresh legs coming on.",
		"Tactical substitution here from the manager.",
	},
	EventCorner: {
		"Corner kick coming in from the right.",
		"They've won a corner. Set piece opportunity here.",
	},
	EventFreeKick: {
		"Free kick in a dangerous area here.",
		"He'll fancy this free kick, just outside the box.",
	},
	EventShotOnTarget: {
		"Shot! But it's straight at the keeper.",
		"Good effort but the goalkeeper holds it comfortably.",
	},
	EventShotOffTarget: {
		"He tries his luck but it's well wide.",
		"Shot! But that's gone into row Z.",
	},
	EventSave: {
		"WHAT A SAVE! Incredible reflexes!",
		"The keeper comes up huge with a stunning stop!",
	},
	EventOffside: {
		"The flag goes up. Offside.",
		"He was just ahead of the last defender there.",
	},
	EventHalftime: {
		"And that's halftime! Time for team talks and tactical adjustments.",
		"The whistle goes for the break. Plenty to discuss in the dressing room.",
	},
	EventSecondHalfStart: {
		"We're back underway for the second half!",
		"The second 45 begins. Can we see a change in fortunes?",
	},
	EventAddedTime: {
		"The board goes up. Added time to be played.",
		"Into injury time now. Every second counts!",
	},
	EventMatchEnd: {
		"And that's full time! What a match we've witnessed!",
		"The final whistle blows! It's all over!",
	},
	EventInjury: {
		"The physio is on the pitch. Hopefully nothing serious.",
		"Play has stopped as we have a player down.",
	},
}

const fallbackCommentary = "Action on the pitch."
