// Package sequencer drives loaded CSV rows through a Dispatcher one at a
// time, in file order, and keeps one LogEntry per attempt.
//
// A Sequencer moves through IDLE, RUNNING and STOPPED. Start launches the send
// loop in the background; Stop is cooperative and is observed between sends,
// so at most the send already in flight completes after it. A failed send is
// logged and the loop moves on to the next row.
package sequencer
